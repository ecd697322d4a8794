// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// Every controller depends on a narrow view of the document store:
//
//   - ContentStore: create and list content documents (internal/http/stores.go)
//   - ProgressStore: record and read back progress snapshots (internal/http/progress.go)
//   - DiagnosticsStore: connectivity probes for /test (internal/http/diagnostics.go)
//   - HealthStore: liveness probes for /health (internal/http/health.go)
//   - demo.Store: idempotent seeding (internal/demo/content.go)
//   - DocumentStore: the composite the router wires in (internal/http/stores.go)
//
// All of them are satisfied by a single concrete type, *database.Store.
//
// # Adding a New Collection
//
// To serve a new kind of learning content:
//
//  1. Define the payload in internal/entities/
//
//     type Exercise struct {
//         LessonID string `json:"lesson_id" binding:"required"`
//         Prompt   string `json:"prompt" binding:"required"`
//     }
//
//     func (e Exercise) Document() map[string]any {
//         // Shape the stored document
//     }
//
//     Add a CollectionExercise constant next to the other collection names.
//
//  2. Create a controller in internal/http/
//
//     type ExercisesController struct {
//         store ContentStore
//         log   *logger.Logger
//     }
//
//     func (controller *ExercisesController) Create(c *gin.Context) {
//         // Bind, store.Create(entities.CollectionExercise, ...), respondCreated
//     }
//
//  3. Register routes in router.go
//
//  4. Describe the document shape in entities.SchemaShapes so /schema
//     reports it.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
