// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package scopedname provides a structured representation of names that are
qualified by the models enclosing them, in the canonical format
`outer::inner::local`.

Composite models re-expose the parts of their sub-models under such names,
so `robot1::base_link` in a composite refers to the body `base_link` of its
`robot1` sub-model. This package centralizes the separator, parsing, and
formatting rules.
*/
package scopedname
