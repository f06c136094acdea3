// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/rpc/certificate"
	rpcfixtures "github.com/regionx/regionxd/rpc/fixtures"
	"github.com/regionx/regionxd/rpc/handler"
	"github.com/regionx/regionxd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rand.Seed(time.Now().UnixNano())
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func randomListen() (string, int) {
	port := rand.Intn(30000) + 30000
	return fmt.Sprintf("127.0.0.1:%d", port), port
}

func addServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	err := s.Register(Add{})
	require.NoError(t, err, "register")
	return s
}

func TestRPCListenerServe(t *testing.T) {
	listen, _ := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}
	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, addServer(t), nil)
	require.NoError(t, err, "wrong NewRPC")

	err = l.Serve()
	require.NoError(t, err, "wrong Serve")
	defer l.Stop()

	client, err := jsonrpc.Dial("tcp", listen)
	require.NoError(t, err, "dial")
	defer client.Close()

	arg := AddArg{A: 2, B: 5}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRPCListenerServeTLS(t *testing.T) {
	dir, err := ioutil.TempDir("", "listeners")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	_, err = rpcfixtures.CreateCertificate(dir)
	require.NoError(t, err, "create certificate")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Load(log, "test", path.Join(dir, rpcfixtures.CertificateFile), path.Join(dir, rpcfixtures.KeyFile))
	require.NoError(t, err, "load certificate")

	listen, _ := randomListen()
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
	}
	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, log, &count, addServer(t), tlsConfig)
	require.NoError(t, err, "wrong NewRPC")
	require.NoError(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	require.NoError(t, err, "dial")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 3, B: 4}, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, 7, reply, "wrong result")
}

func TestNewRPCErrors(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)
	s := rpc.NewServer()

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:1234"}}, log, &count, s, nil)
	assert.Equal(t, fault.MissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{MaximumConnections: 1}, log, &count, s, nil)
	assert.Equal(t, fault.MissingParameters, err, "no listen address")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"not.an.ip:1234"}}, log, &count, s, nil)
	assert.Equal(t, fault.InvalidIpAddress, err, "bad listen address")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"*:1234", "[::1]:1234"}}, log, &count, s, nil)
	assert.NoError(t, err, "wildcard and IPv6 addresses")
}

func TestHTTPSDisabled(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	h := handler.New(log, rpc.NewServer(), time.Now(), "1.0", 1, nil)

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, log, nil, h)
	assert.NoError(t, err, "disabled listener")
	assert.Nil(t, l, "listener created without addresses")
}

func TestHTTPSServe(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	h := handler.New(log, addServer(t), time.Now(), "1.0", 5, nil)

	listen, port := randomListen()
	con := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Allow: map[string][]string{
			"details": {"127.0.0.0/8"},
		},
	}

	l, err := listeners.NewHTTPS(&con, log, nil, h)
	require.NoError(t, err, "wrong NewHTTPS")
	require.NoError(t, l.Serve(), "wrong Serve")
	defer l.Stop()

	request := map[string]interface{}{
		"id":     1,
		"method": "Add.Add",
		"params": []AddArg{{A: 20, B: 22}},
	}
	data, _ := json.Marshal(request)

	var resp *http.Response
	for i := 0; i < 10; i += 1 {
		resp, err = http.Post(fmt.Sprintf("http://127.0.0.1:%d/regionxd/rpc", port), "application/json", bytes.NewReader(data))
		if nil == err {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err, "post")
	defer resp.Body.Close()

	var reply struct {
		Result int         `json:"result"`
		Error  interface{} `json:"error"`
	}
	err = json.NewDecoder(resp.Body).Decode(&reply)
	require.NoError(t, err, "decode")
	assert.Equal(t, 42, reply.Result, "wrong result")
	assert.Nil(t, reply.Error, "unexpected error")

	details, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/regionxd/details", port))
	require.NoError(t, err, "details")
	defer details.Body.Close()
	assert.Equal(t, http.StatusOK, details.StatusCode, "details refused")
}
