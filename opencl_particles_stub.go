//go:build !opencl

package main

import "errors"

type openCLParticleSolver struct{}

func newOpenCLParticleSolver(fieldWidth, fieldHeight, count int) (*openCLParticleSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLParticleSolver) UploadField(cells []vec2) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLParticleSolver) Advect(pos, vel []vec2) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLParticleSolver) Close() {}

func (s *openCLParticleSolver) DeviceName() string { return "" }
