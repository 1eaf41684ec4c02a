// Package drawlist implements List, a fixed-capacity intrusive doubly
// linked list over a dense range of integer indices [0, N). It is the
// single data structure both visibility position resolvers (§4.3, §4.4)
// build their output permutation with: append candidates as they are
// discovered, then splice in O(1) as relative order is refined, without
// ever reallocating or shifting existing entries.
//
// This mirrors the Boyer-Myrvold C implementation's listCollection, which
// layers a permutation + prev/next arrays directly over the graph's own
// vertex/edge index space rather than using a general-purpose container.
package drawlist
