// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	admin   string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "query and update a tweet registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " client RPC `HOST:PORT`",
			EnvVar: "REGISTRY_CONNECT",
		},
		cli.StringFlag{
			Name:   "admin, a",
			Value:  "127.0.0.1:2131",
			Usage:  " admin RPC `HOST:PORT`",
			EnvVar: "REGISTRY_ADMIN",
		},
		cli.StringFlag{
			Name:   "caller, i",
			Value:  "",
			Usage:  " identity of the caller for updates `ADDRESS`",
			EnvVar: "REGISTRY_CALLER",
		},
	}

	pageFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "offset, o",
			Value: 0,
			Usage: " start at `N`",
		},
		cli.Uint64Flag{
			Name:  "limit, l",
			Value: 10,
			Usage: " return up to `COUNT` items",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display registry node info",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "count",
			Usage:     "display tweet totals",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "handle, u",
					Value: "",
					Usage: " also count tweets posted by `HANDLE`",
				},
				cli.StringFlag{
					Name:  "ecosystem, e",
					Value: "",
					Usage: " also count tweets having ecosystem `TAG`",
				},
			},
			Action: runCount,
		},
		{
			Name:      "tweet",
			Usage:     "display one tweet",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, f",
					Value: "",
					Usage: "+tweet fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "+tweet `URL`",
				},
				cli.StringFlag{
					Name:  "cid",
					Value: "",
					Usage: "+screenshot, data or root content `CID`",
				},
			},
			Action: runTweet,
		},
		{
			Name:      "exists",
			Usage:     "check if a tweet is stored",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, f",
					Value: "",
					Usage: "+tweet fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "+tweet `URL`",
				},
			},
			Action: runExists,
		},
		{
			Name:      "user",
			Usage:     "list fingerprints of tweets posted by a handle",
			ArgsUsage: "HANDLE",
			Flags:     pageFlags,
			Action:    runUser,
		},
		{
			Name:      "ecosystem",
			Usage:     "list fingerprints of tweets having an ecosystem tag",
			ArgsUsage: "TAG",
			Flags:     pageFlags,
			Action:    runEcosystem,
		},
		{
			Name:      "all",
			Usage:     "list fingerprints of all tweets in registration order",
			ArgsUsage: " ",
			Flags:     pageFlags,
			Action:    runAll,
		},
		{
			Name:      "cids",
			Usage:     "list content references of all tweets in registration order",
			ArgsUsage: " ",
			Flags:     pageFlags,
			Action:    runCIDs,
		},
		{
			Name:      "deposit-get",
			Usage:     "display a deposit",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, f",
					Value: "",
					Usage: "+tweet fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "+tweet `URL`",
				},
			},
			Action: runDepositGet,
		},
		{
			Name:      "deposit",
			Usage:     "stake value against a tweet fingerprint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: "*deposit arguments JSON `FILE` (- for stdin)",
				},
				cli.Uint64Flag{
					Name:  "value, n",
					Value: 0,
					Usage: "*value to deposit `AMOUNT`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "payouts",
			Usage:     "list withdrawals made to an address",
			ArgsUsage: "ADDRESS",
			Flags:     pageFlags,
			Action:    runPayouts,
		},
		{
			Name:      "store",
			Usage:     "store a processed tweet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "json, j",
					Value: "",
					Usage: "*tweet JSON `FILE` (- for stdin)",
				},
				cli.StringFlag{
					Name:  "submitter, s",
					Value: "",
					Usage: "*address of the submitter `ADDRESS`",
				},
			},
			Action: runStore,
		},
		{
			Name:      "update-cids",
			Usage:     "replace the archive references of a tweet",
			ArgsUsage: "\n   (* = required, + = at least one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, f",
					Value: "",
					Usage: "*tweet fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "screenshot",
					Value: "",
					Usage: "+screenshot `CID`",
				},
				cli.StringFlag{
					Name:  "data",
					Value: "",
					Usage: "+data `CID`",
				},
				cli.StringFlag{
					Name:  "root",
					Value: "",
					Usage: "+root `CID`",
				},
				cli.StringFlag{
					Name:  "deal",
					Value: "",
					Usage: "+storage deal `ID`",
				},
			},
			Action: runUpdateCIDs,
		},
		{
			Name:      "update-validation",
			Usage:     "replace the validation data of a deposit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, f",
					Value: "",
					Usage: "*tweet fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "validation, d",
					Value: "",
					Usage: "*validation `DATA`",
				},
			},
			Action: runUpdateValidation,
		},
		{
			Name:      "withdraw",
			Usage:     "send the whole deposit balance to the owner",
			ArgsUsage: " ",
			Action:    runWithdraw,
		},
		{
			Name:      "transfer-ownership",
			Usage:     "replace the registry owner",
			ArgsUsage: "NEW-OWNER",
			Action:    runTransferOwnership,
		},
		{
			Name:      "events",
			Usage:     "list events in sequence order or filtered by a topic",
			ArgsUsage: "\n   (name, topic and value select a filter)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " sequence to start at or filter offset `N`",
				},
				cli.Uint64Flag{
					Name:  "count, n",
					Value: 10,
					Usage: " return up to `COUNT` events",
				},
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: " event `NAME`",
				},
				cli.StringFlag{
					Name:  "topic",
					Value: "",
					Usage: " topic `NAME`",
				},
				cli.StringFlag{
					Name:  "value",
					Value: "",
					Usage: " topic `VALUE`",
				},
			},
			Action: runEvents,
		},
		{
			Name:      "watch",
			Usage:     "subscribe to published events",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "broadcast, b",
					Value: "",
					Usage: "*publisher `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "server-key, k",
					Value: "",
					Usage: "*publisher public key `FILE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` events (0 = forever)",
				},
			},
			Action: runWatch,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				admin:   c.GlobalString("admin"),
				caller:  c.GlobalString("caller"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}
