// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"time"

	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/value"
)

// parseArguments - convert described call arguments to values
func parseArguments(arguments []configuration.Argument) ([]value.Value, error) {
	values := make([]value.Value, 0, len(arguments))
	for i, argument := range arguments {
		v, err := parseArgument(argument)
		if nil != err {
			return nil, fault.Field("Argument", strconv.Itoa(i), err)
		}
		values = append(values, v)
	}
	return values, nil
}

func parseArgument(argument configuration.Argument) (value.Value, error) {
	switch argument.Type {
	case "int":
		n, ok := argument.Value.(float64)
		if !ok {
			return nil, ErrArgumentType
		}
		i, err := toInt64(n)
		if nil != err {
			return nil, ErrArgumentType
		}
		return value.Int(i), nil

	case "float":
		n, ok := argument.Value.(float64)
		if !ok {
			return nil, ErrArgumentType
		}
		return value.Float(n), nil

	case "bool":
		b, ok := argument.Value.(bool)
		if !ok {
			return nil, ErrArgumentType
		}
		return value.Bool(b), nil

	case "address", "account", "asset", "contract":
		s, ok := argument.Value.(string)
		if !ok {
			return nil, ErrArgumentType
		}
		switch argument.Type {
		case "address":
			return value.NewAddress(s)
		case "account":
			return value.NewAccount(s)
		case "asset":
			return value.NewAsset(s)
		default:
			return value.NewContract(s)
		}

	case "msg":
		s, ok := argument.Value.(string)
		if !ok {
			return nil, ErrArgumentType
		}
		return value.NewMsg(s)

	case "datetime":
		s, ok := argument.Value.(string)
		if !ok {
			return nil, ErrArgumentType
		}
		t, err := time.Parse(time.RFC3339, s)
		if nil != err {
			return nil, err
		}
		return value.NewDateTime(t), nil

	case "timedelta":
		s, ok := argument.Value.(string)
		if !ok {
			return nil, ErrArgumentType
		}
		d, err := time.ParseDuration(s)
		if nil != err {
			return nil, err
		}
		return value.NewTimeDelta(d)

	case "void":
		return value.Void{}, nil

	case "undefined":
		return value.Undefined{}, nil

	default:
		return nil, fault.ErrUnknownValueType
	}
}
