// SPDX-License-Identifier: MIT

// Package scoring runs a repair cost model over a suite of test cases and
// aggregates the results.
//
// A Case pairs the cart a system produced (observed) with the cart it should
// have produced (expected). The Scorer asks a Repairer how many repair steps
// separate the two; a case passes when nothing needs repairing.
//
// Cases are independent, so Score processes them concurrently with a bounded
// number of workers. Results are reported in suite order regardless of
// completion order, and the first failing case cancels the rest.
//
// Suites are YAML documents:
//
//	cases:
//	  - id: one-latte
//	    comment: customer asked for oat milk
//	    observed:
//	      items:
//	        - quantity: 1
//	          key: "9100:1:0"
//	    expected:
//	      items:
//	        - quantity: 1
//	          key: "9100:1:0"
//	          children:
//	            - quantity: 1
//	              key: "5001:0"
package scoring
