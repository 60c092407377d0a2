package structs

// This file collects the small built-in adapters the descriptors compose
// from: a not-supported Ascify/Binify pair for compound types, and a no-op
// Uninit that the leaf descriptors in leaf_*.go use because they own no
// external resource.
// Spec §4.1 calls these region_init/copy/equal, notsupp_*, and
// nothing_free; the region_* family is unnecessary here because a leaf's
// payload is already an ordinary Go value living in Value.prim, so plain
// assignment already gives init/copy/equal region semantics for free (see
// leaf_int.go, leaf_bool.go, etc.).

func notSupportedAscify(t *Type, v *Value) (string, error) {
	return "", errNotSupported("", "%s does not support text rendering", t)
}

func notSupportedBinify(t *Type, text string, v *Value) error {
	return errNotSupported("", "%s does not support text parsing", t)
}

func nothingUninit(t *Type, v *Value) {}
