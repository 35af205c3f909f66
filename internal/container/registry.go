package container

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
)

// Descriptor is one serviced compute container.
type Descriptor struct {
	Name     string            `json:"name"`
	Image    string            `json:"image"`
	Endpoint string            `json:"endpoint"`
	Env      map[string]string `json:"env,omitempty"`
}

type registryFile struct {
	Containers []Descriptor `json:"containers"`
}

// Registry maps chain-side container ids to descriptors. The chain derives a
// container id as keccak256 of the container name, so a descriptor's id never
// appears in the config file.
type Registry struct {
	byID map[string]Descriptor
}

// LoadRegistry reads the JSON container config.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read container config: %w", err)
	}

	var file registryFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse container config: %w", err)
	}

	byID := make(map[string]Descriptor, len(file.Containers))
	for _, desc := range file.Containers {
		if desc.Name == "" {
			return nil, fmt.Errorf("container config: descriptor without a name")
		}
		if desc.Endpoint == "" {
			return nil, fmt.Errorf("container config: %s has no endpoint", desc.Name)
		}
		byID[IDForName(desc.Name)] = desc
	}
	return &Registry{byID: byID}, nil
}

// IDForName derives the chain-side container id for a name.
func IDForName(name string) string {
	return crypto.Keccak256Hash([]byte(name)).Hex()
}

// Resolve returns the descriptor for a chain container id, if serviced here.
func (r *Registry) Resolve(containerID string) (Descriptor, bool) {
	desc, ok := r.byID[containerID]
	return desc, ok
}

// Services reports whether the container id belongs to this agent.
func (r *Registry) Services(containerID string) bool {
	_, ok := r.byID[containerID]
	return ok
}

// Len returns the number of configured containers.
func (r *Registry) Len() int {
	return len(r.byID)
}
