// Package schema turns machine-description documents into Transition Tables.
//
// A description is a structured record with the following shape (JSON shown,
// YAML is equivalent):
//
//	{
//	    "initial": 0,
//	    "final": [1],
//	    "white": "_",
//	    "transitions": [
//	        {"from": 0, "read": "0", "to": 0, "write": "0", "dir": "R"},
//	        {"from": 0, "read": "1", "to": 1, "write": "1", "dir": "R"}
//	    ]
//	}
//
// Decoding is weakly typed: "3" is accepted where an integer is expected and
// 0 where a single character is expected. Every problem found in a document is
// reported at once; all failures match domain.ErrMalformedSpecification.
package schema
