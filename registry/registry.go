// Package registry implements the oracle provider registry: a schema layer
// that maps providers, endpoints, parameters, and response curves onto a
// generic hash-addressed key-value store.
//
// The registry holds no state of its own. Every operation derives composite
// keys through the keyspace package and reads or writes the injected
// storage.Store; validation always completes before the first write, so a
// rejected operation leaves no partial state behind.
package registry

import (
	"math/big"

	"xdao.co/oraclereg/curve"
	"xdao.co/oraclereg/event"
	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/storage"
)

// Identity is an opaque, already-authenticated caller identity. Mutating
// operations trust it as supplied; there is no session or token model at
// this layer.
type Identity = keyspace.Identity

// Label is a fixed-width name or value (titles, endpoint names, parameter
// keys and values).
type Label = keyspace.Label

// Registry is the provider registry. All methods are synchronous and atomic
// with respect to the store: either every write of an operation lands or
// none does.
type Registry struct {
	store    storage.Store
	pub      event.Publisher
	resolver storage.Resolver
}

// Option customizes a Registry.
type Option func(*Registry)

// WithPublisher attaches a notification sink. Events fire after the
// operation's writes; they carry no correctness weight.
func WithPublisher(p event.Publisher) Option {
	return func(r *Registry) {
		if p != nil {
			r.pub = p
		}
	}
}

// WithResolver attaches a store resolver so RefreshStore can swap the
// underlying store reference.
func WithResolver(res storage.Resolver) Option {
	return func(r *Registry) {
		if res != nil {
			r.resolver = res
		}
	}
}

// New constructs a Registry over an injected store.
func New(store storage.Store, opts ...Option) *Registry {
	r := &Registry{store: store, pub: event.Discard{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromResolver resolves the "DATABASE" role once at construction and
// keeps the resolver for later RefreshStore calls.
func NewFromResolver(res storage.Resolver, opts ...Option) (*Registry, error) {
	store, err := res.Resolve(storeRole)
	if err != nil {
		return nil, err
	}
	return New(store, append(opts, WithResolver(res))...), nil
}

// storeRole is the resolver role the registry's store lives under.
const storeRole = "DATABASE"

// RefreshStore re-resolves the store reference, picking up a store upgrade.
// Fails with ErrNoResolver when the registry was built without one.
func (r *Registry) RefreshStore() error {
	if r.resolver == nil {
		return ErrNoResolver
	}
	store, err := r.resolver.Resolve(storeRole)
	if err != nil {
		return err
	}
	r.store = store
	return nil
}

// Register records a provider exactly once: its public key and title are
// written, the identity is appended to the global index, and a
// ProviderRegistered event fires. A second call for the same caller fails
// with ErrAlreadyRegistered and changes nothing.
//
// A nil publicKey is stored as zero. Registering with a zero title is
// accepted but changes nothing: a zero title is the "not registered" marker,
// so writing it would put an identity into the index that every read reports
// as unregistered.
func (r *Registry) Register(caller Identity, publicKey *big.Int, title Label) error {
	registered, err := r.IsRegistered(caller)
	if err != nil {
		return err
	}
	if registered {
		return ErrAlreadyRegistered
	}
	if title.IsZero() {
		return nil
	}
	if err := r.store.SetNumber(publicKeyKey(caller), publicKey); err != nil {
		return err
	}
	if err := r.store.SetLabel(titleKey(caller), title); err != nil {
		return err
	}
	if err := r.store.PushIdentity(indexKey(), caller); err != nil {
		return err
	}
	r.pub.Publish(event.ProviderRegistered{Identity: caller, Title: title})
	return nil
}

// IsRegistered reports whether a non-zero title is stored for id.
func (r *Registry) IsRegistered(id Identity) (bool, error) {
	title, err := r.store.GetLabel(titleKey(id))
	if err != nil {
		return false, err
	}
	return !title.IsZero(), nil
}

// PublicKey returns the stored public key. Unregistered providers read as
// zero, mirroring the raw store.
func (r *Registry) PublicKey(id Identity) (*big.Int, error) {
	return r.store.GetNumber(publicKeyKey(id))
}

// Title returns the stored title; zero for unregistered providers.
func (r *Registry) Title(id Identity) (Label, error) {
	return r.store.GetLabel(titleKey(id))
}

// RegisterCurve validates and persists the response curve for one
// (caller, endpoint) pair, appends the endpoint to the caller's endpoint
// list, and fires a CurveRegistered event.
//
// The flat encoding is persisted exactly as supplied. A curve can be set at
// most once per pair; invalid encodings are rejected before any write.
func (r *Registry) RegisterCurve(caller Identity, endpoint Label, c curve.Curve) error {
	registered, err := r.IsRegistered(caller)
	if err != nil {
		return err
	}
	if !registered {
		return ErrNotRegistered
	}
	n, err := r.store.IntsLen(curveKey(caller, endpoint))
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCurveAlreadySet
	}
	if err := curve.Validate(c); err != nil {
		return err
	}
	if err := r.store.SetInts(curveKey(caller, endpoint), c); err != nil {
		return err
	}
	if err := r.store.PushLabel(endpointsKey(caller), endpoint); err != nil {
		return err
	}
	r.pub.Publish(event.CurveRegistered{Identity: caller, Endpoint: endpoint, Curve: c})
	return nil
}

// Curve returns the stored flat curve encoding for (provider, endpoint).
func (r *Registry) Curve(provider Identity, endpoint Label) (curve.Curve, error) {
	vs, err := r.store.GetInts(curveKey(provider, endpoint))
	if err != nil {
		return nil, err
	}
	if len(vs) == 0 {
		return nil, ErrCurveNotSet
	}
	return curve.Curve(vs), nil
}

// CurveLength returns the flat length of the stored curve.
func (r *Registry) CurveLength(provider Identity, endpoint Label) (int, error) {
	n, err := r.store.IntsLen(curveKey(provider, endpoint))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrCurveNotSet
	}
	return n, nil
}

// Endpoints returns the caller-appended endpoint list, in insertion order.
// Duplicate registrations of an endpoint name appear as often as they were
// pushed; that is wasteful but not an invariant violation.
func (r *Registry) Endpoints(provider Identity) ([]Label, error) {
	return r.store.GetLabels(endpointsKey(provider))
}

// SetParameter writes a provider-scoped parameter. The first set of a key
// marks it initialized and appends it to the provider's key list; later sets
// only overwrite the value.
func (r *Registry) SetParameter(caller Identity, key, value Label) error {
	registered, err := r.IsRegistered(caller)
	if err != nil {
		return err
	}
	if !registered {
		return ErrNotRegistered
	}
	flag, err := r.store.GetNumber(paramInitKey(caller, key))
	if err != nil {
		return err
	}
	if flag.Sign() == 0 {
		if err := r.store.SetNumber(paramInitKey(caller, key), big.NewInt(1)); err != nil {
			return err
		}
		if err := r.store.PushLabel(paramKeysKey(caller), key); err != nil {
			return err
		}
	}
	return r.store.SetLabel(paramValueKey(caller, key), value)
}

// Parameter reads a provider-scoped parameter value.
func (r *Registry) Parameter(provider Identity, key Label) (Label, error) {
	registered, err := r.IsRegistered(provider)
	if err != nil {
		return Label{}, err
	}
	if !registered {
		return Label{}, ErrNotRegistered
	}
	flag, err := r.store.GetNumber(paramInitKey(provider, key))
	if err != nil {
		return Label{}, err
	}
	if flag.Sign() == 0 {
		return Label{}, ErrParameterNotInitialized
	}
	return r.store.GetLabel(paramValueKey(provider, key))
}

// ParameterKeys returns the provider's parameter keys in first-set order;
// each key appears exactly once.
func (r *Registry) ParameterKeys(provider Identity) ([]Label, error) {
	return r.store.GetLabels(paramKeysKey(provider))
}

// SetEndpointParameters replaces the endpoint's parameter list wholesale.
// The endpoint must already carry a curve.
func (r *Registry) SetEndpointParameters(caller Identity, endpoint Label, params []Label) error {
	registered, err := r.IsRegistered(caller)
	if err != nil {
		return err
	}
	if !registered {
		return ErrNotRegistered
	}
	n, err := r.store.IntsLen(curveKey(caller, endpoint))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCurveNotSet
	}
	return r.store.SetLabels(endpointParamsKey(caller, endpoint), params)
}

// EndpointParameters returns the endpoint's parameter list; empty when never
// set.
func (r *Registry) EndpointParameters(provider Identity, endpoint Label) ([]Label, error) {
	return r.store.GetLabels(endpointParamsKey(provider, endpoint))
}

// ProviderCount returns the length of the global index.
func (r *Registry) ProviderCount() (int, error) {
	return r.store.IdentitiesLen(indexKey())
}

// ProviderAt returns the identity at position i of the global index.
func (r *Registry) ProviderAt(i int) (Identity, error) {
	n, err := r.ProviderCount()
	if err != nil {
		return Identity{}, err
	}
	if i < 0 || i >= n {
		return Identity{}, ErrIndexOutOfRange
	}
	return r.store.IdentityAt(indexKey(), i)
}

// AllProviders returns a snapshot of the global index in registration order.
// Safe with zero providers (returns an empty slice).
func (r *Registry) AllProviders() ([]Identity, error) {
	return r.store.GetIdentities(indexKey())
}
