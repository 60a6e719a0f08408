// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity and token utilities.

# Bearer Tokens

Deleting a review requires proving who you are. Tokens are HS256 JWTs with
a username claim and an expiry:

	token, err := auth.IssueToken("alice", secret, auth.DefaultTokenTTL)
	username, err := auth.ParseToken(token, secret)

ParseToken rejects other signing methods, tokens without an expiry, and
expired or tampered tokens with ErrInvalidToken. A valid token without a
username yields ErrMissingUsername.

Tokens are minted out of band with the rmactl tool:

	rmactl token --username alice

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()

# IP Hashing

For privacy-preserving abuse tracking on reviews:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
