// Package network holds the static registry of supported networks and the
// bridge contracts deployed on each of them.
package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
)

var (
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrNoBridgeDeployment = errors.New("no bridge deployment")
)

// Key identifies a network in the registry, e.g. "ethereum".
type Key string

// NativeCurrency describes a network's native coin
type NativeCurrency struct {
	Name     string
	Symbol   string
	Decimals int
}

// Profile holds the chain parameters of a network
type Profile struct {
	Key            Key
	ChainID        uint64
	DisplayName    string
	NativeCurrency NativeCurrency
	RPCURLs        []string
}

// ChainIDHex returns the chain id in the 0x-prefixed form wallets expect.
func (p Profile) ChainIDHex() string {
	return hexutil.EncodeUint64(p.ChainID)
}

func (p Profile) clone() Profile {
	p.RPCURLs = append([]string(nil), p.RPCURLs...)
	return p
}

// Deployment holds the bridge contracts deployed on a network
type Deployment struct {
	NetworkKey    Key
	BridgeAddress common.Address
	TokenAddress  common.Address
	CallSignature contracts.CallSignature
}

// Registry is an immutable lookup over network profiles and bridge deployments.
type Registry struct {
	profiles    map[Key]Profile
	byChainID   map[uint64]Key
	deployments map[Key]Deployment
}

// NewRegistry validates profiles and deployments and builds a registry.
func NewRegistry(profiles []Profile, deployments []Deployment) (*Registry, error) {
	r := &Registry{
		profiles:    make(map[Key]Profile, len(profiles)),
		byChainID:   make(map[uint64]Key, len(profiles)),
		deployments: make(map[Key]Deployment, len(deployments)),
	}

	for _, p := range profiles {
		if p.Key == "" {
			return nil, fmt.Errorf("network with chain id %d has no key", p.ChainID)
		}
		if p.ChainID == 0 {
			return nil, fmt.Errorf("network %s: chain id is required", p.Key)
		}
		if len(p.RPCURLs) == 0 {
			return nil, fmt.Errorf("network %s: at least one rpc url is required", p.Key)
		}
		if _, exists := r.profiles[p.Key]; exists {
			return nil, fmt.Errorf("duplicate network key %s", p.Key)
		}
		if other, exists := r.byChainID[p.ChainID]; exists {
			return nil, fmt.Errorf("network %s: chain id %d already used by %s", p.Key, p.ChainID, other)
		}
		r.profiles[p.Key] = p.clone()
		r.byChainID[p.ChainID] = p.Key
	}

	for _, d := range deployments {
		if _, ok := r.profiles[d.NetworkKey]; !ok {
			return nil, fmt.Errorf("deployment for %s: %w", d.NetworkKey, ErrUnknownNetwork)
		}
		if _, exists := r.deployments[d.NetworkKey]; exists {
			return nil, fmt.Errorf("duplicate deployment for network %s", d.NetworkKey)
		}
		if d.BridgeAddress == (common.Address{}) {
			return nil, fmt.Errorf("deployment for %s: bridge address is required", d.NetworkKey)
		}
		if d.CallSignature == "" {
			d.CallSignature = contracts.SignatureRecipient
		}
		if !d.CallSignature.Valid() {
			return nil, fmt.Errorf("deployment for %s: unsupported call signature %q", d.NetworkKey, d.CallSignature)
		}
		r.deployments[d.NetworkKey] = d
	}

	return r, nil
}

// Lookup returns the profile registered under key.
func (r *Registry) Lookup(key Key) (Profile, error) {
	p, ok := r.profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, key)
	}
	return p.clone(), nil
}

// LookupByChainID returns the profile with the given chain id.
func (r *Registry) LookupByChainID(chainID uint64) (Profile, error) {
	key, ok := r.byChainID[chainID]
	if !ok {
		return Profile{}, fmt.Errorf("%w: chain id %d", ErrUnknownNetwork, chainID)
	}
	return r.profiles[key].clone(), nil
}

// DeploymentFor returns the bridge deployment on the given network.
func (r *Registry) DeploymentFor(key Key) (Deployment, error) {
	if _, ok := r.profiles[key]; !ok {
		return Deployment{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, key)
	}
	d, ok := r.deployments[key]
	if !ok {
		return Deployment{}, fmt.Errorf("%w: %s", ErrNoBridgeDeployment, key)
	}
	return d, nil
}

// Keys returns all registered network keys in sorted order.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Profiles returns all registered profiles ordered by key.
func (r *Registry) Profiles() []Profile {
	keys := r.Keys()
	out := make([]Profile, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.profiles[k].clone())
	}
	return out
}
