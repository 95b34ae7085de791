// SPDX-License-Identifier: MIT

package srg

// Exceptional returns the six sporadic tuples and their zero-argument
// recipes. Each call returns a fresh map.
func Exceptional() map[Params]Recipe {
	return map[Params]Recipe{
		{V: 27, K: 16, Lambda: 10, Mu: 8}:    Direct(SchlaefliGraph),
		{V: 50, K: 7, Lambda: 0, Mu: 1}:      Direct(HoffmanSingletonGraph),
		{V: 56, K: 10, Lambda: 0, Mu: 2}:     Direct(SimsGewirtzGraph),
		{V: 77, K: 16, Lambda: 0, Mu: 4}:     Direct(M22Graph),
		{V: 231, K: 30, Lambda: 9, Mu: 3}:    Direct(CameronGraph),
		{V: 275, K: 112, Lambda: 30, Mu: 56}: Direct(McLaughlinGraph),
	}
}
