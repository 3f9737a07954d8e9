// SPDX-License-Identifier: MIT
//
// Package streetnet loads pre-built pedestrian street networks.
//
// Two on-disk formats are supported:
//
//   - node-link JSON, as exported by common graph tooling: a "nodes" array
//     with id and x/y (or lon/lat) and a "links" array with source, target,
//     length and an optional street name. The arrays may sit at the top level
//     or under a "graph" key.
//   - a gob cache of the decoded Network, produced by Convert. Large
//     networks load several times faster from the cache.
//
// Networks are never fetched from a mapping service; acquisition happens
// offline.
package streetnet
