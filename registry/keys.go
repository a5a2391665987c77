package registry

import "xdao.co/oraclereg/keyspace"

// Every entity lives under a deterministic composite key; nothing exists
// outside these paths. The tag literals are the schema and must never change
// once data is written under them.

func indexKey() keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracleIndex"))
}

func publicKeyKey(id Identity) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("publicKey"))
}

func titleKey(id Identity) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("title"))
}

func endpointsKey(id Identity) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("endpoints"))
}

func curveKey(id Identity, endpoint Label) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("curves"), keyspace.Lbl(endpoint))
}

func endpointParamsKey(id Identity, endpoint Label) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("endpointParams"), keyspace.Lbl(endpoint))
}

func paramInitKey(id Identity, key Label) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("isParamSet"), keyspace.Lbl(key))
}

func paramValueKey(id Identity, key Label) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("params"), keyspace.Lbl(key))
}

func paramKeysKey(id Identity) keyspace.Key {
	return keyspace.Derive(keyspace.Tag("oracles"), keyspace.ID(id), keyspace.Tag("paramKeys"))
}
