// Package config implements the enumerated node configuration described
// in spec §6 ("Configuration"), grounded on the teacher's YAML+CLI
// ambient stack (gopkg.in/yaml.v3 for the file, gopkg.in/urfave/cli.v1
// for flag overrides in cmd/vrrbnode).
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NodeType selects a node's role in the network (spec §6).
type NodeType int

const (
	Bootstrap NodeType = iota
	Validator
	Miner
	Full
)

func (t NodeType) String() string {
	switch t {
	case Bootstrap:
		return "bootstrap"
	case Validator:
		return "validator"
	case Miner:
		return "miner"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

func (t NodeType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *NodeType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "bootstrap":
		*t = Bootstrap
	case "validator":
		*t = Validator
	case "miner":
		*t = Miner
	case "full":
		*t = Full
	default:
		return errors.Errorf("config: unknown node_type %q", s)
	}
	return nil
}

// BootstrapConfig seeds a freshly started node's initial quorum
// membership view before its own DKG/election rounds complete.
type BootstrapConfig struct {
	QuorumSeed uint64   `yaml:"quorum_seed"`
	Members    []string `yaml:"members"`
}

// Config is the full enumerated node configuration from spec §6.
type Config struct {
	NodeType NodeType `yaml:"node_type"`

	DataDir string `yaml:"data_dir"`
	DBPath  string `yaml:"db_path"`

	UDPGossipAddress        string `yaml:"udp_gossip_address"`
	RaptorQGossipAddress    string `yaml:"raptorq_gossip_address"`
	KademliaLivenessAddress string `yaml:"kademlia_liveness_address"`
	JSONRPCServerAddress    string `yaml:"jsonrpc_server_address"`
	HTTPAPIAddress          string `yaml:"http_api_address"`

	BootstrapNodeAddresses []string         `yaml:"bootstrap_node_addresses"`
	BootstrapConfig        *BootstrapConfig `yaml:"bootstrap_config"`

	// KeypairPath points at DataDir/keypair.hex, which holds the
	// hex-encoded 32-byte secp256k1 secret scalar, written with mode 0600
	// when it is created. It is not a 48-byte key blob.
	KeypairPath string `yaml:"-"`

	PreloadMockState   bool `yaml:"preload_mock_state"`
	EnableBlockIndexing bool `yaml:"enable_block_indexing"`
	GUI                bool `yaml:"gui"`
	DebugConfig        bool `yaml:"debug_config"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: failed to read file")
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "config: failed to parse yaml")
	}
	if c.KeypairPath == "" {
		c.KeypairPath = c.DataDir + "/keypair.hex"
	}
	return &c, nil
}

// Save writes c back to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "config: failed to marshal yaml")
	}
	return os.WriteFile(path, data, 0644)
}
