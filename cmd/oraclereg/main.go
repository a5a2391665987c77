package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"xdao.co/oraclereg/curve"
	"xdao.co/oraclereg/keyspace"
	"xdao.co/oraclereg/model"
	"xdao.co/oraclereg/registry"
	"xdao.co/oraclereg/storage"
	"xdao.co/oraclereg/storage/storeregistry"

	_ "xdao.co/oraclereg/storage/grpcstore"
	_ "xdao.co/oraclereg/storage/memstore"
	_ "xdao.co/oraclereg/storage/redisstore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "register":
		return cmdRegister(args[1:], out, errOut)
	case "providers":
		return cmdProviders(args[1:], out, errOut)
	case "provider":
		return cmdProvider(args[1:], out, errOut)
	case "curve":
		return cmdCurve(args[1:], out, errOut)
	case "set-param":
		return cmdSetParam(args[1:], out, errOut)
	case "get-param":
		return cmdGetParam(args[1:], out, errOut)
	case "set-endpoint-params":
		return cmdSetEndpointParams(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "oraclereg: oracle provider registry CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  oraclereg register --store redis --redis-addr <host:port> --identity <hex> --title <label> [--public-key <decimal>]")
	fmt.Fprintln(w, "  oraclereg providers [common flags]")
	fmt.Fprintln(w, "  oraclereg provider --identity <hex>")
	fmt.Fprintln(w, "  oraclereg curve --identity <hex> --endpoint <label> --curve 1,5,10")
	fmt.Fprintln(w, "  oraclereg set-param --identity <hex> --key <label> --value <label>")
	fmt.Fprintln(w, "  oraclereg get-param --identity <hex> --key <label>")
	fmt.Fprintln(w, "  oraclereg set-endpoint-params --identity <hex> --endpoint <label> --params a,b,c")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - the mem store lives for one invocation; use redis or grpc for real state")
	fmt.Fprintln(w, "  - grpc store talks to oraclereg-storaged (or any BlobStore gRPC server)")
}

type commonFlags struct {
	store      string
	listStores bool
}

func (c *commonFlags) add(fs *flag.FlagSet) {
	fs.StringVar(&c.store, "store", "mem", "store backend name")
	fs.BoolVar(&c.listStores, "list-stores", false, "List supported store backends and exit")
	storeregistry.RegisterFlags(fs, storeregistry.UsageCLI)
}

func (c *commonFlags) openStore() (storage.Store, func() error, error) {
	return storeregistry.Open(c.store, storeregistry.UsageCLI)
}

func printStores(w io.Writer) {
	for _, b := range storeregistry.List(storeregistry.UsageCLI) {
		if b.Description == "" {
			_, _ = fmt.Fprintf(w, "%s\n", b.Name)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", b.Name, b.Description)
	}
}

// withRegistry parses args, opens the store, and hands a registry to fn.
func withRegistry(name string, args []string, out, errOut io.Writer, setup func(fs *flag.FlagSet), fn func(reg *registry.Registry) error) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.add(fs)
	if setup != nil {
		setup(fs)
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if common.listStores {
		printStores(out)
		return 0
	}

	store, closeFn, err := common.openStore()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if closeFn != nil {
		defer func() { _ = closeFn() }()
	}

	if err := fn(registry.New(store)); err != nil {
		fmt.Fprintln(errOut, model.FromError(err).Error())
		return 1
	}
	return 0
}

func parseIdentity(s string) (registry.Identity, error) {
	if strings.TrimSpace(s) == "" {
		return registry.Identity{}, fmt.Errorf("missing --identity")
	}
	return keyspace.ParseIdentity(s)
}

func parseLabel(name, s string) (registry.Label, error) {
	if s == "" {
		return registry.Label{}, fmt.Errorf("missing --%s", name)
	}
	return keyspace.LabelFromString(s)
}

func parseCurve(s string) (curve.Curve, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("missing --curve")
	}
	parts := strings.Split(s, ",")
	out := make(curve.Curve, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid curve element %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func cmdRegister(args []string, out, errOut io.Writer) int {
	var identity, title, publicKey string
	return withRegistry("register", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
		fs.StringVar(&title, "title", "", "provider title")
		fs.StringVar(&publicKey, "public-key", "0", "exchange public key as a decimal integer")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		t, err := parseLabel("title", title)
		if err != nil {
			return err
		}
		pk, ok := new(big.Int).SetString(publicKey, 10)
		if !ok {
			return fmt.Errorf("invalid --public-key %q", publicKey)
		}
		if err := reg.Register(id, pk, t); err != nil {
			return err
		}
		fmt.Fprintf(out, "registered %s as %q\n", id, t.String())
		return nil
	})
}

func cmdProviders(args []string, out, errOut io.Writer) int {
	return withRegistry("providers", args, out, errOut, nil, func(reg *registry.Registry) error {
		ids, err := reg.AllProviders()
		if err != nil {
			return err
		}
		for _, id := range ids {
			title, err := reg.Title(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\n", id, title.String())
		}
		return nil
	})
}

func cmdProvider(args []string, out, errOut io.Writer) int {
	var identity string
	return withRegistry("provider", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		p, err := model.Snapshot(reg, id)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	})
}

func cmdCurve(args []string, out, errOut io.Writer) int {
	var identity, endpoint, curveSpec string
	return withRegistry("curve", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
		fs.StringVar(&endpoint, "endpoint", "", "endpoint name")
		fs.StringVar(&curveSpec, "curve", "", "flattened curve, comma separated (e.g. 1,5,10)")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		ep, err := parseLabel("endpoint", endpoint)
		if err != nil {
			return err
		}
		c, err := parseCurve(curveSpec)
		if err != nil {
			return err
		}
		if err := reg.RegisterCurve(id, ep, c); err != nil {
			return err
		}
		fmt.Fprintf(out, "curve registered for %s endpoint %q (%d values)\n", id, ep.String(), len(c))
		return nil
	})
}

func cmdSetParam(args []string, out, errOut io.Writer) int {
	var identity, key, value string
	return withRegistry("set-param", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
		fs.StringVar(&key, "key", "", "parameter key")
		fs.StringVar(&value, "value", "", "parameter value")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		k, err := parseLabel("key", key)
		if err != nil {
			return err
		}
		v, err := keyspace.LabelFromString(value)
		if err != nil {
			return err
		}
		return reg.SetParameter(id, k, v)
	})
}

func cmdGetParam(args []string, out, errOut io.Writer) int {
	var identity, key string
	return withRegistry("get-param", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
		fs.StringVar(&key, "key", "", "parameter key")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		k, err := parseLabel("key", key)
		if err != nil {
			return err
		}
		v, err := reg.Parameter(id, k)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v.String())
		return nil
	})
}

func cmdSetEndpointParams(args []string, out, errOut io.Writer) int {
	var identity, endpoint, params string
	return withRegistry("set-endpoint-params", args, out, errOut, func(fs *flag.FlagSet) {
		fs.StringVar(&identity, "identity", "", "provider identity (hex)")
		fs.StringVar(&endpoint, "endpoint", "", "endpoint name")
		fs.StringVar(&params, "params", "", "parameter labels, comma separated")
	}, func(reg *registry.Registry) error {
		id, err := parseIdentity(identity)
		if err != nil {
			return err
		}
		ep, err := parseLabel("endpoint", endpoint)
		if err != nil {
			return err
		}
		var ps []registry.Label
		if strings.TrimSpace(params) != "" {
			for _, p := range strings.Split(params, ",") {
				l, err := keyspace.LabelFromString(strings.TrimSpace(p))
				if err != nil {
					return err
				}
				ps = append(ps, l)
			}
		}
		return reg.SetEndpointParameters(id, ep, ps)
	})
}
