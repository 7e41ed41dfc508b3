/*
Package token contains implementation of the Token contract, a NEP-17
fungible token used as the escrowed asset and as the whitelist purchase
currency in this module's deployments and tests.

Transfers are authorized either by a witness of the sender or by the sender
being the calling contract, which lets the Locker contract pull deposits
into escrow (the depositor signed the transaction) and release them back
out of its own account.

# Contract notifications

Transfer notification. This is the NEP-17 standard notification. Minting
produces it with an empty sender.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
