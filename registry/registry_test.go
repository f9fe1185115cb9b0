// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
)

func TestStoreTweet(t *testing.T) {
	r, events := setup(t)
	defer teardown()

	input := makeInput("https://x.com/alice/status/1", "alice", "FLR", "cid-shot")
	input.Storage.DataCID = "cid-data"
	input.Storage.RootCID = "cid-root"
	input.Storage.DealID = "deal-1"
	fp := store(t, r, input)

	tweet, err := r.GetTweet(fp)
	assert.Nil(t, err, "stored tweet not found")
	assert.Equal(t, input.Identity, tweet.Identity, "wrong identity")
	assert.Equal(t, input.Content, tweet.Content, "wrong content")
	assert.Equal(t, input.Metrics, tweet.Metrics, "wrong metrics")
	assert.Equal(t, input.Storage, tweet.Storage, "wrong storage")
	assert.Equal(t, processorAddress, tweet.Meta.Processor, "wrong processor")
	assert.Equal(t, submitterAddress, tweet.Meta.Submitter, "wrong submitter")
	assert.True(t, tweet.Meta.Exists, "existence flag not set")
	assert.NotEqual(t, uint64(0), tweet.Meta.ProcessedAt, "processing time not set")

	byURL, err := r.GetTweetByURL("https://x.com/alice/status/1")
	assert.Nil(t, err, "not found by url")
	assert.Equal(t, tweet, byURL, "wrong tweet by url")

	for _, cid := range []string{"cid-shot", "cid-data", "cid-root"} {
		byCID, err := r.GetTweetByCID(cid)
		assert.Nil(t, err, "not found by cid: %s", cid)
		assert.Equal(t, fp, byCID.Identity.Fingerprint, "wrong tweet for cid: %s", cid)
	}
	_, err = r.GetTweetByCID("deal-1")
	assert.Equal(t, fault.TweetNotFound, err, "deal id was indexed")

	assert.True(t, r.Exists(fp), "stored tweet does not exist")
	assert.Equal(t, uint64(1), r.TotalTweets(), "wrong total")
	assert.Equal(t, uint64(1), r.UserTweetCount("alice"), "wrong user count")
	assert.Equal(t, uint64(1), r.EcosystemTweetCount("FLR"), "wrong ecosystem count")

	records, err := events.Filter(event.TweetStored, registry.TopicSubmitter, submitterAddress.String(), 0, 10)
	assert.Nil(t, err, "wrong filter")
	assert.Equal(t, 1, len(records), "wrong submitter event count")
	assert.Equal(t, uint64(1), events.FilterCount(event.TweetStored, registry.TopicProcessor, processorAddress.String()), "wrong processor event count")

	m, err := records[0].Decode()
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, fp.String(), m["fingerprint"], "wrong event fingerprint")
	assert.Equal(t, "https://x.com/alice/status/1", m["url"], "wrong event url")
	assert.Equal(t, "cid-shot", m["ipfsScreenshotCID"], "wrong event screenshot")
	assert.Equal(t, "cid-root", m["filecoinRootCID"], "wrong event root")
}

func TestStoreTweetRejections(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	input := makeInput("https://x.com/alice/status/2", "alice", "FLR", "")

	err := r.StoreTweet(submitterAddress, input, submitterAddress)
	assert.Equal(t, fault.NotOwner, err, "non owner stored a tweet")
	assert.True(t, fault.IsErrAuthorisation(err), "wrong error class")

	empty := makeInput("", "alice", "FLR", "")
	err = r.StoreTweet(processorAddress, empty, submitterAddress)
	assert.Equal(t, fault.EmptyURL, err, "empty url accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")

	fp := store(t, r, input)

	again := makeInput("https://x.com/alice/status/2", "mallory", "BTC", "cid-other")
	again.Content = "replaced"
	err = r.StoreTweet(processorAddress, again, otherAddress)
	assert.Equal(t, fault.TweetExists, err, "duplicate accepted")
	assert.True(t, fault.IsErrExists(err), "wrong error class")

	tweet, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found")
	assert.Equal(t, "the original text", tweet.Content, "duplicate replaced content")
	assert.Equal(t, "alice", tweet.Identity.Handle, "duplicate replaced handle")
	assert.Equal(t, submitterAddress, tweet.Meta.Submitter, "duplicate replaced submitter")

	assert.Equal(t, uint64(1), r.TotalTweets(), "duplicate counted")
	assert.Equal(t, uint64(0), r.UserTweetCount("mallory"), "duplicate indexed by handle")
	assert.Equal(t, uint64(0), r.EcosystemTweetCount("BTC"), "duplicate indexed by ecosystem")
	_, err = r.GetTweetByCID("cid-other")
	assert.Equal(t, fault.TweetNotFound, err, "duplicate indexed by cid")
}

func TestUnknownEcosystem(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	fp := store(t, r, makeInput("https://x.com/bob/status/1", "bob", "", ""))

	tweet, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found")
	assert.Equal(t, registry.UnknownEcosystem, tweet.Storage.Ecosystem, "wrong default ecosystem")
	assert.Equal(t, uint64(1), r.EcosystemTweetCount(registry.UnknownEcosystem), "wrong default ecosystem count")
	assert.Equal(t, uint64(0), r.EcosystemTweetCount(""), "empty tag indexed")
}

func TestNotFound(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	fp := fingerprint.FromURL("https://x.com/nobody/status/1")

	_, err := r.GetTweet(fp)
	assert.Equal(t, fault.TweetNotFound, err, "wrong error for missing tweet")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")

	_, err = r.GetTweetByURL("https://x.com/nobody/status/1")
	assert.Equal(t, fault.TweetNotFound, err, "wrong error for missing url")

	_, err = r.GetTweetByCID("nothing")
	assert.Equal(t, fault.TweetNotFound, err, "wrong error for missing cid")

	assert.False(t, r.Exists(fp), "missing tweet exists")
}

func TestPagination(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	expected := make([]fingerprint.Fingerprint, 0, 5)
	for i := 0; i < 5; i += 1 {
		fp := store(t, r, makeInput(fmt.Sprintf("https://x.com/alice/status/%d", i), "alice", "FLR", ""))
		expected = append(expected, fp)
	}
	// interleaved entries from other lists must not leak in
	store(t, r, makeInput("https://x.com/bob/status/1", "bob", "BTC", ""))

	hashes, err := r.GetTweetsByUser("alice", 2, 2)
	assert.Nil(t, err, "wrong page error")
	assert.Equal(t, expected[2:4], hashes, "wrong middle page")

	hashes, err = r.GetTweetsByUser("alice", 10, 2)
	assert.Nil(t, err, "offset past end gave error")
	assert.Equal(t, 0, len(hashes), "offset past end gave results")

	hashes, err = r.GetTweetsByUser("alice", 0, 0)
	assert.Nil(t, err, "zero limit gave error")
	assert.Equal(t, 0, len(hashes), "zero limit gave results")

	// all three lists page identically over the same sequence
	for offset := uint64(0); offset <= 6; offset += 1 {
		for limit := uint64(0); limit <= 6; limit += 1 {
			byUser, err := r.GetTweetsByUser("alice", offset, limit)
			assert.Nil(t, err, "user page error")
			byEcosystem, err := r.GetTweetsByEcosystem("FLR", offset, limit)
			assert.Nil(t, err, "ecosystem page error")
			all, err := r.GetAllTweetHashes(offset, limit)
			assert.Nil(t, err, "all page error")

			want := []fingerprint.Fingerprint{}
			if offset < 5 {
				end := offset + limit
				if end > 5 {
					end = 5
				}
				want = expected[offset:end]
			}
			assert.Equal(t, want, byUser, "user page: %d,%d", offset, limit)
			assert.Equal(t, want, byEcosystem, "ecosystem page: %d,%d", offset, limit)
			if offset < 5 {
				assert.Equal(t, want, all[:len(want)], "all page: %d,%d", offset, limit)
			}
		}
	}

	assert.Equal(t, uint64(6), r.TotalTweets(), "wrong total")
	assert.Equal(t, uint64(5), r.UserTweetCount("alice"), "wrong alice count")
	assert.Equal(t, uint64(1), r.UserTweetCount("bob"), "wrong bob count")
	assert.Equal(t, uint64(0), r.UserTweetCount("carol"), "wrong empty count")
}

func TestSnapshotImmutability(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	input := makeInput("https://x.com/alice/status/7", "alice", "FLR", "cid-7")
	fp := store(t, r, input)

	input.Content = "changed by caller"
	input.Metrics.Likes = 99999
	input.Storage.ScreenshotCID = "cid-changed"

	tweet, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found")
	assert.Equal(t, "the original text", tweet.Content, "content followed caller input")
	assert.Equal(t, uint64(10), tweet.Metrics.Likes, "metrics followed caller input")
	assert.Equal(t, "cid-7", tweet.Storage.ScreenshotCID, "storage followed caller input")

	// returned values are copies
	tweet.Content = "changed by reader"
	again, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found")
	assert.Equal(t, "the original text", again.Content, "cached record changed by reader")
}

func TestUpdateCIDs(t *testing.T) {
	r, events := setup(t)
	defer teardown()

	input := makeInput("https://x.com/alice/status/8", "alice", "FLR", "cid-old")
	fp := store(t, r, input)
	before, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found")

	update := &registry.CIDUpdate{
		DataCID: "cid-data",
		DealID:  "deal-8",
	}

	err = r.UpdateCIDs(submitterAddress, fp, update)
	assert.Equal(t, fault.NotOwner, err, "non owner updated")

	err = r.UpdateCIDs(processorAddress, fingerprint.FromURL("https://x.com/missing"), update)
	assert.Equal(t, fault.TweetNotFound, err, "missing tweet updated")

	err = r.UpdateCIDs(processorAddress, fp, &registry.CIDUpdate{})
	assert.Equal(t, fault.MissingParameters, err, "empty update accepted")

	err = r.UpdateCIDs(processorAddress, fp, update)
	assert.Nil(t, err, "update rejected")

	after, err := r.GetTweet(fp)
	assert.Nil(t, err, "tweet not found after update")
	assert.Equal(t, before.Identity, after.Identity, "identity changed")
	assert.Equal(t, before.Content, after.Content, "content changed")
	assert.Equal(t, before.Metrics, after.Metrics, "metrics changed")
	assert.Equal(t, before.Meta, after.Meta, "meta changed")
	assert.Equal(t, "cid-old", after.Storage.ScreenshotCID, "unspecified screenshot changed")
	assert.Equal(t, "cid-data", after.Storage.DataCID, "data cid not changed")
	assert.Equal(t, "", after.Storage.RootCID, "unspecified root changed")
	assert.Equal(t, "deal-8", after.Storage.DealID, "deal not changed")
	assert.Equal(t, "FLR", after.Storage.Ecosystem, "ecosystem changed")

	byCID, err := r.GetTweetByCID("cid-data")
	assert.Nil(t, err, "new cid not indexed")
	assert.Equal(t, fp, byCID.Identity.Fingerprint, "wrong tweet for new cid")

	records, err := events.Filter(event.TweetUpdated, registry.TopicFingerprint, fp.String(), 0, 10)
	assert.Nil(t, err, "wrong filter")
	assert.Equal(t, 1, len(records), "wrong update event count")
	m, err := records[0].Decode()
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, "storage", m["field"], "wrong updated field group")
}

func TestReverseIndexRepoint(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	a := store(t, r, makeInput("https://x.com/alice/status/100", "alice", "FLR", "cidX"))
	b := store(t, r, makeInput("https://x.com/bob/status/200", "bob", "FLR", ""))

	tweet, err := r.GetTweetByCID("cidX")
	assert.Nil(t, err, "cidX not found")
	assert.Equal(t, a, tweet.Identity.Fingerprint, "cidX not owned by first tweet")

	err = r.UpdateCIDs(processorAddress, b, &registry.CIDUpdate{ScreenshotCID: "cidX"})
	assert.Nil(t, err, "repoint rejected")

	tweet, err = r.GetTweetByCID("cidX")
	assert.Nil(t, err, "cidX not found after repoint")
	assert.Equal(t, b, tweet.Identity.Fingerprint, "cidX not repointed to newer owner")

	// the earlier tweet keeps its own field
	first, err := r.GetTweet(a)
	assert.Nil(t, err, "first tweet not found")
	assert.Equal(t, "cidX", first.Storage.ScreenshotCID, "first tweet changed")
}

func TestGetAllCIDs(t *testing.T) {
	r, _ := setup(t)
	defer teardown()

	one := makeInput("https://x.com/a/status/1", "a", "FLR", "s1")
	one.Storage.RootCID = "r1"
	store(t, r, one)
	store(t, r, makeInput("https://x.com/a/status/2", "a", "FLR", ""))
	three := makeInput("https://x.com/a/status/3", "a", "FLR", "s3")
	three.Storage.DataCID = "d3"
	store(t, r, three)

	cids, err := r.GetAllCIDs(0, 10)
	assert.Nil(t, err, "wrong cids error")
	assert.Equal(t, []string{"s1", "r1", "s3", "d3"}, cids, "wrong cids")

	cids, err = r.GetAllCIDs(1, 1)
	assert.Nil(t, err, "wrong cids error")
	assert.Equal(t, []string{}, cids, "wrong cids for tweet without references")

	cids, err = r.GetAllCIDs(5, 1)
	assert.Nil(t, err, "wrong cids error past end")
	assert.Equal(t, 0, len(cids), "cids past end")
}

func TestTransferOwnership(t *testing.T) {
	r, events := setup(t)
	defer teardown()

	err := r.TransferOwnership(submitterAddress, otherAddress)
	assert.Equal(t, fault.NotOwner, err, "non owner transferred")

	err = r.TransferOwnership(processorAddress, address.Zero)
	assert.Equal(t, fault.InvalidNewOwner, err, "zero owner accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")

	err = r.TransferOwnership(processorAddress, otherAddress)
	assert.Nil(t, err, "transfer rejected")
	assert.Equal(t, otherAddress, r.Owner(), "owner not changed")
	assert.Equal(t, uint64(1), events.FilterCount(event.OwnershipTransferred, registry.TopicNewOwner, otherAddress.String()), "wrong transfer event count")

	input := makeInput("https://x.com/a/status/owner", "a", "FLR", "")
	err = r.StoreTweet(processorAddress, input, submitterAddress)
	assert.Equal(t, fault.NotOwner, err, "previous owner still privileged")

	err = r.StoreTweet(otherAddress, input, submitterAddress)
	assert.Nil(t, err, "new owner rejected")

	tweet, err := r.GetTweet(input.Identity.Fingerprint)
	assert.Nil(t, err, "tweet not found")
	assert.Equal(t, otherAddress, tweet.Meta.Processor, "wrong processor")
}
