package model

import (
	"errors"

	"xdao.co/oraclereg/registry"
)

// Provider is the JSON projection of one registered provider.
type Provider struct {
	Identity string `json:"identity"`
	// PublicKey is the stored public key in decimal.
	PublicKey string `json:"publicKey"`
	Title     string `json:"title"`

	Endpoints  []Endpoint  `json:"endpoints,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// Endpoint is one named sub-resource with its curve and parameter list.
type Endpoint struct {
	Name   string   `json:"name"`
	Curve  []int64  `json:"curve"`
	Params []string `json:"params,omitempty"`
}

// Parameter is one provider-scoped key/value pair.
type Parameter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Snapshot assembles the full projection of a registered provider.
func Snapshot(reg *registry.Registry, id registry.Identity) (*Provider, error) {
	registered, err := reg.IsRegistered(id)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, registry.ErrNotRegistered
	}

	title, err := reg.Title(id)
	if err != nil {
		return nil, err
	}
	pk, err := reg.PublicKey(id)
	if err != nil {
		return nil, err
	}
	out := &Provider{
		Identity:  id.String(),
		PublicKey: pk.Text(10),
		Title:     title.String(),
	}

	eps, err := reg.Endpoints(id)
	if err != nil {
		return nil, err
	}
	seen := map[registry.Label]bool{}
	for _, ep := range eps {
		// The endpoint list tolerates duplicates; project each name once.
		if seen[ep] {
			continue
		}
		seen[ep] = true
		c, err := reg.Curve(id, ep)
		if err != nil && !errors.Is(err, registry.ErrCurveNotSet) {
			return nil, err
		}
		params, err := reg.EndpointParameters(id, ep)
		if err != nil {
			return nil, err
		}
		e := Endpoint{Name: ep.String(), Curve: c}
		for _, p := range params {
			e.Params = append(e.Params, p.String())
		}
		out.Endpoints = append(out.Endpoints, e)
	}

	keys, err := reg.ParameterKeys(id)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		v, err := reg.Parameter(id, k)
		if err != nil {
			return nil, err
		}
		out.Parameters = append(out.Parameters, Parameter{Key: k.String(), Value: v.String()})
	}
	return out, nil
}
