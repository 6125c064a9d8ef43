// SPDX-License-Identifier: MIT

package internal

type (
	// Generator builds the RFC 4226 / RFC 6238 code derivation primitives for
	// a given shared secret. The windowing and replay policy stays outside.
	Generator interface {
		CreateTimeBased(userSecret string) TimeBased
		CreateCounterBased(userSecret string) CounterBased
	}
	TimeBased interface {
		At(timestamp int64) string
		ProvisioningUri(accountName, issuerName string) string
	}
	CounterBased interface {
		At(count int) string
	}
)
