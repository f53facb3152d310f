// Package menu models the restaurant catalog and the customization options a
// customer can pick for an item.
//
// The package includes:
//   - MenuItem: a catalog entry owned by the catalog store and edited by staff
//   - CustomizationCategory and CustomizationOption: the option templates of an item
//   - Customization: a customer's working copy of an item's options, with the
//     selection constraints (checkmark options hold 0 or 1, quantity options stay
//     within [0, max]) enforced as silent clamps
//
// Price arithmetic over a Customization lives in the domain services package.
package menu
