// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started network server
type Listener interface {
	Serve() error
	Stop()
}

// change "*:PORT" to "[::]:PORT" and return the network of each
// address, on the assumption that "[::]" listens on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, nil, fault.InvalidIpAddress
		}

		host := ""
		if '*' == listen[0] {
			addresses[i] = "[::]:" + strings.Split(listen, ":")[1]
			host = "::"
			networks[i] = "tcp"
		} else if '[' == listen[0] {
			addresses[i] = listen
			host = strings.Split(listen[1:], "]:")[0]
			networks[i] = "tcp6"
		} else {
			addresses[i] = listen
			host = strings.Split(listen, ":")[0]
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, err
		}
	}

	return networks, addresses, nil
}
