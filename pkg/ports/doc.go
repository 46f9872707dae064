/*
Package ports defines the driven ports (interfaces) of the game host.

These interfaces decouple the game from concrete backends so the same host runs against a local
save file, a shared Redis instance, or memory in tests.

# Key Interfaces

  - PlayerStore: persists and restores the PlayerState of a named profile.
  - Locker: serializes writers that share one profile across processes.
*/
package ports
