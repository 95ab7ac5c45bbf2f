// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - ProblemService (this package) covers the problem lifecycle; review and
//     report live in their own subpackages
//
// 2. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include repositories, domain services, a clock and a logger
//
// 3. Error Handling:
//   - Domain validation errors are returned unchanged
//   - Repository failures are wrapped in service-specific error types that
//     keep the store sentinel reachable through errors.Is
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
