/*
Package ports defines the driven ports (interfaces) of the simulator.

These interfaces decouple the core from external implementations, allowing the
engine to read machines from various sources and to cache verdicts in various
backends.

# Key Interfaces

  - MachineLoader: Responsible for producing a machine-description document (e.g., from a file or memory).
  - VerdictStore: Responsible for remembering verdicts per machine fingerprint and word.
  - Evaluator: The engine surface consumed by driving adapters (runner, HTTP, MCP).
*/
package ports
