// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives device partition keys and random identifiers.

# Device Keys

Clients identify themselves with an X-Device-UUID header. The header is
validated and then mapped to a storage partition with HMAC-SHA256:

	if err := auth.ValidateDeviceUUID(uuid); err != nil { ... }
	deviceID := auth.DeviceKey(uuid, cfg.DeviceKeySalt)

The key is deterministic, so the same device always lands on the same
partition, and the raw UUID never reaches storage or logs.

# Random IDs

GenerateID returns a hex string from crypto/rand, used for reminder
flow session IDs:

	id, err := auth.GenerateID(12)
*/
package auth
