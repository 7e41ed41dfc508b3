/*
Package referral contains implementation of the Referral contract, the
referral-code registry consumed by the Locker contract's discounted fee
path.

Anyone can register a unique code. When a lock batch is paid with an active
code, the locker reports the paid fee through RecordReward and the amount
accumulates against the code; payout of accumulated rewards is an off-chain
settlement concern. Only locker contracts registered by the contract owner
may record rewards, so attribution cannot be forged by arbitrary callers.

# Contract notifications

CodeCreated notification. This notification is produced when a referral code
is registered.

	CodeCreated:
	  - name: owner
	    type: Hash160
	  - name: code
	    type: String

RewardRecorded notification. This notification is produced when a locker
contract attributes a paid fee to a code.

	RewardRecorded:
	  - name: code
	    type: String
	  - name: amount
	    type: Integer
*/
package referral
