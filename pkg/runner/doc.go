/*
Package runner evaluates word lists against an engine.

It is the bridge between the simulator core and line-oriented I/O: it reads
newline-delimited words, decides each one (optionally in parallel, every word on
its own tape) and writes one "<word> - <Accepted|Rejected>" line per word, in
input order.

# Usage

	r := runner.NewRunner(runner.WithConcurrency(4))

	summary, err := r.Run(ctx, engine, wordsFile, resultsFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d accepted, %d rejected", summary.Accepted, summary.Rejected)
*/
package runner
