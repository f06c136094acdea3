// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AmountError GenericError
type BridgeError GenericError
type ExistsError GenericError
type ExpiredError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnauthorisedError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyListed                = ExistsError("region already listed")
	BridgeAlreadyExists          = BridgeError("bridge: item already exists")
	BridgeBadWitness             = BridgeError("bridge: invalid witness data")
	BridgeBidTooLow              = BridgeError("bridge: bid too low")
	BridgeFrozen                 = BridgeError("bridge: item or collection is frozen")
	BridgeInUse                  = BridgeError("bridge: item id is already taken")
	BridgeLocked                 = BridgeError("bridge: item is locked")
	BridgeMaxSupplyAlreadySet    = BridgeError("bridge: max supply already set")
	BridgeMaxSupplyReached       = BridgeError("bridge: all items minted")
	BridgeMaxSupplyTooSmall      = BridgeError("bridge: max supply too small")
	BridgeNoDelegate             = BridgeError("bridge: no delegate approved")
	BridgeNoPermission           = BridgeError("bridge: no permission")
	BridgeNotForSale             = BridgeError("bridge: item not for sale")
	BridgeOriginCannotBeCaller   = BridgeError("bridge: origin cannot be caller")
	BridgeRuntimeError           = BridgeError("bridge: runtime error")
	BridgeUnaccepted             = BridgeError("bridge: ownership not accepted")
	BridgeUnapproved             = BridgeError("bridge: no approval for transfer")
	BridgeUnknownCollection      = BridgeError("bridge: unknown collection")
	BridgeUnknownItem            = BridgeError("bridge: unknown item")
	BridgeUnknownStatusCode      = BridgeError("bridge: unknown status code")
	BridgeWrongDelegate          = BridgeError("bridge: wrong delegate")
	BridgeWrongOwner             = BridgeError("bridge: wrong owner")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CannotInitialise             = UnauthorisedError("caller cannot initialise region")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CollectionAlreadyExists      = ExistsError("collection already exists")
	ConfigurationNotTable        = InvalidError("configuration must return a table")
	ConfigurationPointer         = InvalidError("configuration must be a struct pointer")
	IncorrectDeposit             = AmountError("incorrect listing deposit")
	InsufficientBalance          = AmountError("insufficient balance")
	InsufficientPayment          = AmountError("insufficient payment")
	InvalidAccountLength         = InvalidError("invalid account length")
	InvalidCertificate           = InvalidError("invalid certificate")
	InvalidContract              = InvalidError("invalid contract address")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidMetadata              = InvalidError("region metadata does not match region id")
	InvalidNonce                 = InvalidError("invalid nonce")
	InvalidRegionDuration        = InvalidError("region end must be after begin")
	InvalidRegionId              = InvalidError("invalid region id")
	InvalidSignature             = InvalidError("invalid signature")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MarketNotDeployed            = NotFoundError("market not deployed")
	MetadataNotFound             = NotFoundError("region metadata not found")
	MetadataNotMatching          = InvalidError("region metadata version does not match")
	MissingParameters            = InvalidError("missing parameters")
	MissingTreasury              = InvalidError("submission fee needs a treasury")
	NotApproved                  = UnauthorisedError("caller not approved")
	NotAvailableInReadOnlyMode   = InvalidError("not available in read-only mode")
	NotCollectionAdmin           = UnauthorisedError("caller is not collection admin")
	NotInitialised               = NotFoundError("not initialised")
	NotListed                    = NotFoundError("region not listed")
	NotListingPack               = InvalidError("not a listing pack")
	NotRecordPack                = InvalidError("not a region record pack")
	NotRegionOwner               = UnauthorisedError("caller is not the region owner")
	NotSeller                    = UnauthorisedError("caller is not the seller")
	Overflow                     = AmountError("arithmetic overflow")
	PriceChanged                 = AmountError("region price exceeds expected maximum")
	RateLimiting                 = ProcessError("rate limiting")
	RegionAlreadyInitialised     = ExistsError("region already initialised")
	RegionExpired                = ExpiredError("region expired")
	RegionNotFound               = NotFoundError("region not found")
	RegionStillExists            = InvalidError("region still exists on this chain")
	SelfApprove                  = InvalidError("cannot approve self")
	StaleListing                 = NotFoundError("listing no longer holds the region")
	TokenExists                  = ExistsError("token already exists")
	TokenNotExists               = NotFoundError("token does not exist")
	TransactionInUse             = ProcessError("storage transaction already in use")
	TransactionNotStarted        = ProcessError("storage transaction not started")
	UnknownCall                  = NotFoundError("unknown call")
	WrongSubmissionFee           = AmountError("cannot pay submission fee")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AmountError) Error() string       { return string(e) }
func (e BridgeError) Error() string       { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e ExpiredError) Error() string      { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }

// determine the class of an error

func IsErrAmount(e error) bool {
	_, ok := e.(AmountError)
	return ok
}
func IsErrBridge(e error) bool {
	_, ok := e.(BridgeError)
	return ok
}
func IsErrExists(e error) bool {
	_, ok := e.(ExistsError)
	return ok
}
func IsErrExpired(e error) bool {
	_, ok := e.(ExpiredError)
	return ok
}
func IsErrInvalid(e error) bool {
	_, ok := e.(InvalidError)
	return ok
}
func IsErrNotFound(e error) bool {
	_, ok := e.(NotFoundError)
	return ok
}
func IsErrProcess(e error) bool {
	_, ok := e.(ProcessError)
	return ok
}
func IsErrUnauthorised(e error) bool {
	_, ok := e.(UnauthorisedError)
	return ok
}

// IsRetryable - a failed call may succeed when resubmitted with
// corrected arguments (e.g. a different payment)
func IsRetryable(e error) bool {
	switch e.(type) {
	case AmountError, ProcessError:
		return true
	default:
		return false
	}
}
