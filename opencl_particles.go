//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jgillich/go-opencl/cl"
)

// openCLParticleSolver advects the particle population on an OpenCL device.
// Only the deterministic advection phase runs on the GPU; reseeding stays on
// the host so rng draws keep their sequential order.
type openCLParticleSolver struct {
	context *cl.Context
	queue   *cl.CommandQueue
	program *cl.Program
	kernel  *cl.Kernel

	fieldBuf *cl.MemObject
	posBuf   *cl.MemObject
	velBuf   *cl.MemObject

	fieldW, fieldH int
	count          int

	fieldStage []float32
	posStage   []float32
	velStage   []float32

	deviceName string
}

const advectKernelSource = `__kernel void advect(
    const int count,
    const int field_w,
    const int field_h,
    const float force_scale,
    const float friction,
    __global const float* field,
    __global float* pos,
    __global float* vel)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    float px = pos[i*2];
    float py = pos[i*2+1];
    float fx = 0.0f;
    float fy = 0.0f;
    if (px > 0.0f && px < 1.0f && py > 0.0f && py < 1.0f) {
        int cx = (int)floor(px * (float)field_w) % field_w;
        if (cx < 0) cx += field_w;
        int cy = (int)floor(py * (float)field_h) % field_h;
        if (cy < 0) cy += field_h;
        int cell = (cy * field_w + cx) * 2;
        fx = field[cell] * force_scale;
        fy = field[cell+1] * force_scale;
    }
    pos[i*2]   = px + vel[i*2];
    pos[i*2+1] = py + vel[i*2+1];
    vel[i*2]   = vel[i*2] * friction + fx;
    vel[i*2+1] = vel[i*2+1] * friction + fy;
}`

// newOpenCLParticleSolver prepares a device, builds the advection kernel, and
// allocates the field and particle buffers.
func newOpenCLParticleSolver(fieldWidth, fieldHeight, count int) (*openCLParticleSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{advectKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("advect")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	floatBytes := 4
	fieldBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, fieldWidth*fieldHeight*2*floatBytes)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating field buffer: %w", err)
	}
	posBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, count*2*floatBytes)
	if err != nil {
		fieldBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating position buffer: %w", err)
	}
	velBuf, err := context.CreateEmptyBuffer(cl.MemReadWrite, count*2*floatBytes)
	if err != nil {
		posBuf.Release()
		fieldBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating velocity buffer: %w", err)
	}

	solver := &openCLParticleSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		fieldBuf:   fieldBuf,
		posBuf:     posBuf,
		velBuf:     velBuf,
		fieldW:     fieldWidth,
		fieldH:     fieldHeight,
		count:      count,
		fieldStage: make([]float32, fieldWidth*fieldHeight*2),
		posStage:   make([]float32, count*2),
		velStage:   make([]float32, count*2),
		deviceName: device.Name(),
	}

	if err := solver.kernel.SetArgs(
		int32(count),
		int32(fieldWidth),
		int32(fieldHeight),
		float32(forceScale),
		float32(friction),
		solver.fieldBuf,
		solver.posBuf,
		solver.velBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}

	return solver, nil
}

// UploadField copies the current flow-field cells to the device. Called only
// when a brush operator mutated the field.
func (s *openCLParticleSolver) UploadField(cells []vec2) error {
	if len(cells) != s.fieldW*s.fieldH {
		return fmt.Errorf("unexpected field size %d", len(cells))
	}
	packVec2(s.fieldStage, cells)
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.fieldBuf, false, 0, s.fieldStage, nil); err != nil {
		return fmt.Errorf("writing field buffer: %w", err)
	}
	return nil
}

// Advect runs one advection step over the full population and reads the
// updated positions and velocities back into the host slices. Host state is
// authoritative between steps because the reseed pass mutates it.
func (s *openCLParticleSolver) Advect(pos, vel []vec2) error {
	if len(pos) != s.count || len(vel) != s.count {
		return fmt.Errorf("unexpected particle count %d", len(pos))
	}
	packVec2(s.posStage, pos)
	packVec2(s.velStage, vel)
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, false, 0, s.posStage, nil); err != nil {
		return fmt.Errorf("writing position buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.velBuf, false, 0, s.velStage, nil); err != nil {
		return fmt.Errorf("writing velocity buffer: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{s.count}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing advect kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.posBuf, false, 0, s.posStage, nil); err != nil {
		return fmt.Errorf("reading position buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.velBuf, true, 0, s.velStage, nil); err != nil {
		return fmt.Errorf("reading velocity buffer: %w", err)
	}
	unpackVec2(pos, s.posStage)
	unpackVec2(vel, s.velStage)
	return nil
}

// Close releases every device object.
func (s *openCLParticleSolver) Close() {
	if s.velBuf != nil {
		s.velBuf.Release()
		s.velBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	if s.fieldBuf != nil {
		s.fieldBuf.Release()
		s.fieldBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

// DeviceName reports the selected OpenCL device.
func (s *openCLParticleSolver) DeviceName() string {
	return s.deviceName
}

// packVec2 flattens vec2 slices into interleaved float32 staging storage.
func packVec2(dst []float32, src []vec2) {
	for i, v := range src {
		dst[i*2] = v.x
		dst[i*2+1] = v.y
	}
}

// unpackVec2 restores vec2 slices from interleaved float32 staging storage.
func unpackVec2(dst []vec2, src []float32) {
	for i := range dst {
		dst[i] = vec2{src[i*2], src[i*2+1]}
	}
}
