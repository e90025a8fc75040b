// Package generator builds the test coverage report of the
// gestion-proyectos-frontend project and saves it as a Word document.
//
// The report content is fixed. Generation runs as a pipeline of named
// steps: one per report section, then directory creation, saving and the
// confirmation line. Any failing step aborts the rest.
package generator
