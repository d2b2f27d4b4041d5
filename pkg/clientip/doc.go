// Package clientip extracts the originating client address from a request
// that may have passed through proxies or a CDN.
//
// Headers are checked in this order and the first valid address wins:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Addresses are parsed and normalized; 0.0.0.0 and unspecified IPv6 are
// rejected. When nothing parses, GetIP falls back to the raw RemoteAddr.
//
// The headers are client controlled unless a trusted proxy overwrites them,
// so the result is fit for logging, not for access control.
//
//	log.Info("request", logger.ClientIP(clientip.GetIP(r)))
package clientip
