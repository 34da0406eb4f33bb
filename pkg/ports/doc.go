/*
Package ports defines the driven ports (interfaces) of the nbserve service.

These interfaces decouple the service from its storage and process-execution
implementations, so the HTTP and MCP adapters can be exercised against fakes.

# Key Interfaces

  - DocumentStore: The directory holding notebooks and rendered artifacts.
  - CommandRunner: Runs allow-listed external commands (the graph renderer).
*/
package ports
