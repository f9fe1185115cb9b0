// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	broadcastSize = 1000
	testSize      = 50
)

// Message - a command and its binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a single reader queue
type Queue struct {
	c chan Message
}

// BroadcastQueue - a queue fanned out to all current listeners
type BroadcastQueue struct {
	sync.Mutex
	in        chan Message
	listeners []*listener
}

type listener struct {
	c    chan Message
	done chan struct{}
}

type busses struct {
	Broadcast *BroadcastQueue
	TestQueue *Queue
}

// Bus - the set of available queues
var Bus = busses{
	Broadcast: newBroadcastQueue(broadcastSize),
	TestQueue: newQueue(testSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

func newBroadcastQueue(size int) *BroadcastQueue {
	queue := &BroadcastQueue{
		in: make(chan Message, size),
	}
	go queue.fanOut()
	return queue
}

// Send - queue a message for all listeners
//
// never blocks: the message is dropped if there are no listeners or
// the queue is full
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.Lock()
	n := len(queue.listeners)
	queue.Unlock()
	if 0 == n {
		return
	}

	select {
	case queue.in <- Message{Command: command, Parameters: parameters}:
	default:
	}
}

// Chan - register a new listener
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	l := &listener{
		c:    make(chan Message, size),
		done: make(chan struct{}),
	}
	queue.Lock()
	queue.listeners = append(queue.listeners, l)
	queue.Unlock()
	return l.c
}

// Release - remove a listener
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()
	for i, l := range queue.listeners {
		if (<-chan Message)(l.c) == c {
			close(l.done)
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			return
		}
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.Lock()
	defer queue.Unlock()
	return len(queue.listeners)
}

func (queue *BroadcastQueue) fanOut() {
	for m := range queue.in {
		queue.Lock()
		current := make([]*listener, len(queue.listeners))
		copy(current, queue.listeners)
		queue.Unlock()

		for _, l := range current {
			select {
			case l.c <- m:
			case <-l.done:
			}
		}
	}
}
