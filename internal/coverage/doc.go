// Package coverage reads Istanbul coverage-final.json files and computes
// per-file and total statement, branch and function coverage.
//
// coverage-final.json maps each instrumented file to its hit counters:
//
//	{
//	  "/app/src/App.js": {
//	    "s": {"0": 3, "1": 0},        // statement hits
//	    "f": {"0": 1},                // function hits
//	    "b": {"0": [1, 0]}            // branch hits, one entry per arm
//	  }
//	}
//
// A counter is covered when its hit count is greater than zero.
package coverage
