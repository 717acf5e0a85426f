package models

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NativeSentinel is the address clients use to refer to the native coin.
var NativeSentinel = common.HexToAddress("0x0000000000000000000000000000000000001010")

// ErrInvalidAsset is returned when an asset reference cannot be parsed.
var ErrInvalidAsset = errors.New("invalid asset")

// AssetKind tells native coin and tokens apart.
type AssetKind uint8

const (
	AssetNone AssetKind = iota
	AssetNative
	AssetToken
)

// Asset is either the native coin or a token identified by its address.
type Asset struct {
	Kind  AssetKind
	Token common.Address
}

// NativeAsset returns the native coin.
func NativeAsset() Asset {
	return Asset{Kind: AssetNative}
}

// TokenAsset returns the token at addr. The zero address yields an unset asset
// and the native sentinel yields the native coin.
func TokenAsset(addr common.Address) Asset {
	switch addr {
	case common.Address{}:
		return Asset{}
	case NativeSentinel:
		return NativeAsset()
	}
	return Asset{Kind: AssetToken, Token: addr}
}

// ParseAsset accepts "native", the native sentinel address or a token address.
// An empty string yields an unset asset.
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Asset{}, nil
	case strings.EqualFold(s, "native"):
		return NativeAsset(), nil
	case common.IsHexAddress(s):
		return TokenAsset(common.HexToAddress(s)), nil
	}
	return Asset{}, ErrInvalidAsset
}

func (a Asset) IsSet() bool    { return a.Kind != AssetNone }
func (a Asset) IsNative() bool { return a.Kind == AssetNative }

func (a Asset) String() string {
	switch a.Kind {
	case AssetNative:
		return "native"
	case AssetToken:
		return a.Token.Hex()
	}
	return ""
}
