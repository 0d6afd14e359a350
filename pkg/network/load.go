package network

import (
	_ "embed"
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/bridge-transfer/pkg/config"
	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
)

//go:embed networks.yaml
var builtinNetworks []byte

type registryFile struct {
	Networks    []config.NetworkConfig    `yaml:"networks"`
	Deployments []config.DeploymentConfig `yaml:"deployments"`
}

// Builtin returns the network and deployment definitions shipped with the client.
func Builtin() ([]config.NetworkConfig, []config.DeploymentConfig, error) {
	var f registryFile
	if err := yaml.Unmarshal(builtinNetworks, &f); err != nil {
		return nil, nil, fmt.Errorf("failed to parse builtin networks: %w", err)
	}
	return f.Networks, f.Deployments, nil
}

// Load builds the registry from the builtin definitions merged with the
// configured ones. A configured entry replaces a builtin entry with the same key.
func Load(cfg *config.Config) (*Registry, error) {
	networks, deployments, err := Builtin()
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		networks = mergeNetworks(networks, cfg.Networks)
		deployments = mergeDeployments(deployments, cfg.Deployments)
	}

	profiles := make([]Profile, 0, len(networks))
	for i := range networks {
		n := networks[i]
		if err := defaults.Set(&n); err != nil {
			return nil, fmt.Errorf("network %s: failed to apply defaults: %w", n.Key, err)
		}
		profiles = append(profiles, Profile{
			Key:         Key(n.Key),
			ChainID:     n.ChainID,
			DisplayName: n.DisplayName,
			NativeCurrency: NativeCurrency{
				Name:     n.NativeCurrency.Name,
				Symbol:   n.NativeCurrency.Symbol,
				Decimals: n.NativeCurrency.Decimals,
			},
			RPCURLs: n.RPCURLs,
		})
	}

	deps := make([]Deployment, 0, len(deployments))
	for i := range deployments {
		d := deployments[i]
		if err := defaults.Set(&d); err != nil {
			return nil, fmt.Errorf("deployment %s: failed to apply defaults: %w", d.Network, err)
		}
		if !common.IsHexAddress(d.BridgeAddress) {
			return nil, fmt.Errorf("deployment %s: invalid bridge address %q", d.Network, d.BridgeAddress)
		}
		token := common.Address{}
		if d.TokenAddress != "" {
			if !common.IsHexAddress(d.TokenAddress) {
				return nil, fmt.Errorf("deployment %s: invalid token address %q", d.Network, d.TokenAddress)
			}
			token = common.HexToAddress(d.TokenAddress)
		}
		deps = append(deps, Deployment{
			NetworkKey:    Key(d.Network),
			BridgeAddress: common.HexToAddress(d.BridgeAddress),
			TokenAddress:  token,
			CallSignature: contracts.CallSignature(d.CallSignature),
		})
	}

	return NewRegistry(profiles, deps)
}

func mergeNetworks(base, overrides []config.NetworkConfig) []config.NetworkConfig {
	out := append([]config.NetworkConfig(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Key == o.Key {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

func mergeDeployments(base, overrides []config.DeploymentConfig) []config.DeploymentConfig {
	out := append([]config.DeploymentConfig(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Network == o.Network {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}
