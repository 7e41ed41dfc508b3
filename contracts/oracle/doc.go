/*
Package oracle contains implementation of the Oracle contract, the
price-quote source used by the Locker contract's asset-denominated fee path
and by off-chain tooling.

It is a plain owner-maintained rate table: one Num/Denom pair per asset,
converting amounts in the reference currency into the asset's smallest unit.
Quotes for assets without a published rate fail instead of defaulting, so a
misconfigured fee can never silently become zero.
*/
package oracle
