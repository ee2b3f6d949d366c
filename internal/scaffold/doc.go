// Package scaffold generates the artifacts of a new Julia package from
// embedded templates: the module entrypoint, the test skeleton, the REQUIRE
// manifest, the README with status badges, the ignore file, and the
// optional LICENSE. It also defines the Template descriptor and the
// version-flooring rule shared by the manifest and the CI templates.
package scaffold
