/*
Package observability provides tools for monitoring the simulator.

It turns the engine's lifecycle hooks into Prometheus metrics: verdict counts,
applied transitions and the distribution of steps per word.
*/
package observability
