// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/fault"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "uplink-cli"
	app.Usage = "encode and sign uplink ledger transactions"
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
			Name:   "config-file, c",
			Value:  "",
			EnvVar: "UPLINK_CLI_CONFIG",
			Usage:  "*Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair as an encrypted identity block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*identity `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "privateKey, k",
					Value: "",
					Usage: " use existing private key `HEX`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "keypair",
			Usage:  "show the decrypted key pair of an identity",
			Action: runKeyPair,
		},
		{
			Name:      "encode",
			Usage:     "encode a transaction description",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction description `FILE`",
				},
			},
			Action: runEncode,
		},
		{
			Name:      "sign",
			Usage:     "encode and sign a transaction description",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction description `FILE`",
				},
				cli.StringFlag{
					Name:  "nonce, k",
					Value: "",
					Usage: " fixed signing nonce `HEX` (32 bytes)",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify a transaction signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*transaction description `FILE`",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*DER signature `HEX`",
				},
				cli.StringFlag{
					Name:  "publickey, k",
					Value: "",
					Usage: "*signer public key `HEX`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "asset-address",
			Usage:     "derive the address of a new asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "*issuer account `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "supply, s",
					Value: 0,
					Usage: "*total supply `COUNT`",
				},
				cli.StringFlag{
					Name:  "reference, r",
					Value: "",
					Usage: "*reference `REF` [USD|GBP|EUR|CHF|Token|Security]",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*asset type `TYPE` [Discrete|Binary|Fractional]",
				},
				cli.IntFlag{
					Name:  "precision, p",
					Value: 0,
					Usage: " decimal places for Fractional `N`",
				},
			},
			Action: runAssetAddress,
		},
		{
			Name:  "version",
			Usage: "display uplink-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config-file"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		if nil == log {
			fault.Critical("cannot create main logger channel")
			return fault.ErrInvalidLoggerChannel
		}
		log.Debugf("command: %s  config: %s", command, file)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	return app
}
