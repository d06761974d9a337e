// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/fault"
)

const privateHex = "0101010101010101010101010101010101010101010101010101010101010101"

func writeFile(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	err := os.WriteFile(fileName, []byte(content), 0o600)
	assert.NoError(t, err, "write file error")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	directory := t.TempDir()

	privateKey, err := account.PrivateKeyFromHex(privateHex)
	assert.NoError(t, err, "private key error")
	identity, err := configuration.NewIdentity("alice", "first identity", privateKey, "secret")
	assert.NoError(t, err, "identity error")

	fileName := writeFile(t, directory, "uplink-cli.conf", fmt.Sprintf(`
local logs = "logs"
return {
    default_identity = "alice",
    logging = {
        directory = logs,
        file = "test.log",
        size = 4096,
        count = 2,
        levels = { DEFAULT = "debug" },
    },
    identities = {
        {
            name = "alice",
            description = "first identity",
            public_key = %q,
            private_key = %q,
            salt = %q,
        },
        {
            name = "bob",
            description = "receive only",
            public_key = %q,
        },
    },
}
`, identity.PublicKey, identity.PrivateKey, identity.Salt, identity.PublicKey))

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "configuration error")

	assert.Equal(t, "alice", config.DefaultIdentity, "wrong default")
	assert.Equal(t, filepath.Join(directory, "logs"), config.Logging.Directory, "log directory not absolute")
	assert.Equal(t, "test.log", config.Logging.File, "wrong log file")
	assert.Equal(t, 4096, config.Logging.Size, "wrong log size")
	assert.Equal(t, 2, config.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", config.Logging.Levels["DEFAULT"], "wrong level")
	assert.DirExists(t, config.Logging.Directory, "log directory not created")
	assert.Len(t, config.Identities, 2, "wrong identity count")

	alice, err := config.Identity("")
	assert.NoError(t, err, "default identity error")
	assert.Equal(t, *identity, *alice, "wrong default identity")

	unlocked, err := alice.Unlock("secret")
	assert.NoError(t, err, "unlock error")
	assert.Equal(t, privateHex, unlocked.String(), "wrong private key")
	unlocked.Zero()

	_, err = alice.Unlock("wrong")
	assert.Equal(t, fault.ErrInvalidPassword, err, "wrong password accepted")

	bob, err := config.Identity("bob")
	assert.NoError(t, err, "bob error")
	publicKey, err := bob.Account()
	assert.NoError(t, err, "bob account error")
	assert.Equal(t, privateKey.PublicKey().Address(), publicKey.Address(), "wrong bob account")
	_, err = bob.Unlock("secret")
	assert.Equal(t, fault.ErrInvalidSalt, err, "receive only identity unlocked")

	_, err = config.Identity("carol")
	assert.Equal(t, fault.ErrNotFoundIdentity, err, "missing identity found")
}

func TestConfigurationDefaults(t *testing.T) {
	directory := t.TempDir()
	fileName := writeFile(t, directory, "empty.conf", "return {}\n")

	config, err := configuration.GetConfiguration(fileName)
	assert.NoError(t, err, "configuration error")
	assert.Equal(t, filepath.Join(directory, "log"), config.Logging.Directory, "wrong default directory")
	assert.Equal(t, "uplink-cli.log", config.Logging.File, "wrong default file")
	assert.Equal(t, 1024*1024, config.Logging.Size, "wrong default size")
	assert.Equal(t, 10, config.Logging.Count, "wrong default count")
	assert.Equal(t, "info", config.Logging.Levels[logger.DefaultTag], "default level changed by earlier read")
	assert.Empty(t, config.Identities, "unexpected identities")

	_, err = config.Identity("")
	assert.Equal(t, fault.ErrNotFoundIdentity, err, "empty default found")
}

func TestInvalidConfiguration(t *testing.T) {
	directory := t.TempDir()

	notTable := writeFile(t, directory, "number.conf", "return 42\n")
	_, err := configuration.GetConfiguration(notTable)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non-table accepted")

	syntax := writeFile(t, directory, "syntax.conf", "return {\n")
	_, err = configuration.GetConfiguration(syntax)
	assert.Error(t, err, "syntax error accepted")

	duplicate := writeFile(t, directory, "duplicate.conf", `
return {
    identities = { { name = "x" }, { name = "x" } },
}
`)
	_, err = configuration.GetConfiguration(duplicate)
	assert.Equal(t, fault.ErrNameAlreadyExists, err, "duplicate identity accepted")

	_, err = configuration.GetConfiguration(filepath.Join(directory, "missing.conf"))
	assert.Error(t, err, "missing file accepted")
}

func TestSalt(t *testing.T) {
	salt, err := configuration.MakeSalt()
	assert.NoError(t, err, "make salt error")

	text, err := salt.MarshalText()
	assert.NoError(t, err, "marshal error")
	assert.Len(t, text, 32, "wrong text length")

	var decoded configuration.Salt
	err = decoded.UnmarshalText(text)
	assert.NoError(t, err, "unmarshal error")
	assert.Equal(t, *salt, decoded, "wrong decoded salt")

	err = decoded.UnmarshalText([]byte("0011"))
	assert.Equal(t, fault.ErrInvalidSalt, err, "short salt accepted")
}
