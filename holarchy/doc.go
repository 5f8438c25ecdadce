// Package holarchy models holonic organizations: every holon is an autonomous
// agent that can also be composed into a larger holon.
//
// Attaching a child to an atomic holon promotes it to composite. Autonomy is
// kept in [0, 1]. Attach rejects unknown holons with types.ErrNotFound and
// second parents or cycles with types.ErrInvalidStructure.
package holarchy
