// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/fault"
)

// Load - read a certificate and key pair and return the server TLS
// configuration and the certificate fingerprint
//
// no files means plain TCP: a nil configuration is returned
func Load(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if "" == certificateFile && "" == keyFile {
		log.Warnf("%s: no certificate, TLS disabled", name)
		return nil, fin, nil
	}
	if "" == certificateFile || "" == keyFile {
		log.Errorf("%s: certificate and private key must both be set", name)
		return nil, fin, fault.MissingParameters
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFile, keyFile)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fin)

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in regionxd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
