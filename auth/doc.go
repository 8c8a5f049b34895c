// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session keys, identifiers, and hashing helpers.

# Session Keys

Session keys use HMAC-SHA256 over the session ID:

	key := auth.GenerateSessionKey(sessionID, salt)
	err := auth.ValidateSessionKey(sessionID, key, salt)

The key is URL-safe base64 without padding. It is returned once when the
session is created and sent back in the X-Session-Key header. Since it is
deterministic, it is validated without being stored.

# Identifiers

Sessions use random UUIDs:

	id, err := auth.NewSessionID()
	id, err = auth.ParseSessionID(r.PathValue("id"))

Evaluation snapshots use random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters

# Share Slugs

	slug := auth.GenerateShareSlug(evaluationID, salt)

Slugs are base62 (alphanumeric only) and deterministic from the ID and salt.

# Hashing

	hash := auth.HashIP(ipAddress, salt)       // 16 hex chars
	sum, err := auth.HashAnswers(answers)      // 64 hex chars
*/
package auth
