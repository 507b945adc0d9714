// Package regions groups the marked cells of a grid into maximal
// 4-connected regions and computes each region's minimal bounding box.
//
// What:
//
//   - DisjointSet is a union-find over a flat parent array; region identity
//     is the integer index of the root cell.
//   - Label assigns every marked cell the root index of its region.
//   - Extract returns one Region (bounding box + cell count) per region.
//
// Connectivity is orthogonal only: cells touching at a corner belong to
// different regions.
//
// Complexity:
//
//   - Label:   O(R×C×α(R×C)), Memory: O(R×C).
//   - Extract: O(R×C×α(R×C)), Memory: O(R×C).
package regions
