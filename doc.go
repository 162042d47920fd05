// Package orbtrade implements a local-first profit calculator for trading
// priced items, built around a user-editable price catalog.
//
// The core pieces are:
//   - Catalog and Store: the authoritative item-to-price mapping, seeded
//     from a baseline dataset and overlaid with a persisted override
//     snapshot, then only ever replaced wholesale.
//   - Search: case-insensitive substring lookup over the catalog, in
//     stable enumeration order, for interactive pickers.
//   - Calculator: the two-leg (sell/buy) profit computation with its
//     deliberately forgiving input handling.
//   - Import/Export: a flat, human-readable JSON interchange payload,
//     shared by durable persistence and file transfer.
//
// This package is the foundation of the `obt` command-line tool.
package orbtrade
