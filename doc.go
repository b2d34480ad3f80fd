// Package stockcalc computes target share quantities for a fixed-weight
// portfolio split across USD-denominated US listings and KRW-denominated
// Korean listings.
//
// The core functionalities include:
//   - Portfolio Model: an immutable declaration of budget tiers, each with a
//     fraction of total assets and a list of weighted assets.
//   - Rebalancing Planner: a stateless engine that turns a total asset value,
//     live prices and the USD/KRW rate into per-asset target amounts, rounded
//     share quantities and buy/sell/hold deltas.
//   - Quote Resolution: concurrent, timeout-bounded price and FX fetching
//     with per-asset degradation instead of whole-run failure.
//   - Holdings Parsing: free-text share counts aligned to model order.
//
// This package serves as the foundational logic for the `scalc` command-line
// tool. Nothing is persisted: every computation reflects prices as of the
// moment it runs.
package stockcalc
