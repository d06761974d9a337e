// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/util"
)

// basic defaults, the log directory is relative to the configuration file
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "uplink-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "info",
}

// Configuration - command line tool configuration
type Configuration struct {
	DefaultIdentity string               `gluamapper:"default_identity" json:"default_identity"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
	Identities      []Identity           `gluamapper:"identities" json:"identities"`
}

// GetConfiguration - read, default and check a configuration file
//
// the log directory is made absolute and created if missing
func GetConfiguration(fileName string) (*Configuration, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	baseDirectory, _ := filepath.Split(fileName)

	// the mapper merges into this map, so never hand it the shared defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	seen := make(map[string]struct{}, len(options.Identities))
	for _, identity := range options.Identities {
		if _, ok := seen[identity.Name]; ok {
			return nil, fault.ErrNameAlreadyExists
		}
		seen[identity.Name] = struct{}{}
	}

	options.Logging.Directory = util.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	return options, nil
}

// Identity - find identity for a given name, empty selects the default
func (config *Configuration) Identity(name string) (*Identity, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	for i := range config.Identities {
		if name == config.Identities[i].Name {
			return &config.Identities[i], nil
		}
	}
	return nil, fault.ErrNotFoundIdentity
}
