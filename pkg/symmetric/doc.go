// Package symmetric provides AES encryption in CBC mode with PKCS#7 padding,
// plus an authenticated deterministic variant (AES-SIV).
//
// CBC keys are UTF-8 strings of 16, 24 or 32 bytes selecting AES-128, AES-192
// or AES-256; the IV is a UTF-8 string of exactly 16 bytes. CBC provides no
// integrity: a wrong key or IV is detected only when the padding happens not
// to validate. Use SealDeterministic when tampering must be detected.
//
// Failures are never reported as empty results. Input validation fails with
// errdefs.ErrInvalidArgument, cipher failures with errdefs.ErrCrypto.
package symmetric
