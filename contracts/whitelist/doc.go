/*
Package whitelist contains implementation of the Whitelist contract, the
fee-waiver service consulted by the Locker contract before any fee
computation.

A whitelisted asset pays no lock creation fee on any payment path. Assets
get on the list either by an owner grant or by a self-service purchase paid
in the configured reference token at the configured price.

# Contract notifications

AssetWhitelisted notification. This notification is produced when an asset
becomes fee-exempt.

	AssetWhitelisted:
	  - name: asset
	    type: Hash160

AssetRemoved notification. This notification is produced when an asset's
fee exemption is withdrawn.

	AssetRemoved:
	  - name: asset
	    type: Hash160
*/
package whitelist
