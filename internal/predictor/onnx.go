package predictor

import (
	"context"
	"fmt"
	"sync"

	"github.com/vytor/liveboard/internal/board"
	"github.com/vytor/liveboard/internal/features"
	"github.com/vytor/liveboard/internal/logger"
	ort "github.com/yalue/onnxruntime_go"
)

// ONNXOptions describes a move-prediction model exported to ONNX.
type ONNXOptions struct {
	ModelPath  string
	InputName  string
	OutputName string
	// OutputWidth is the vocabulary size.
	OutputWidth int
}

// ONNXModel runs an ONNX graph taking a (1, 8, 8, 12) float32 input and
// producing (1, OutputWidth) scores. Input and output tensors are allocated once
// and reused, so Predict calls are serialized.
type ONNXModel struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
	log     *logger.Logger
}

// InitRuntime loads the onnxruntime shared library once per process.
func InitRuntime(libPath string) error {
	if ort.IsInitialized() {
		return nil
	}
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnxruntime: %w", err)
	}
	return nil
}

// ShutdownRuntime releases the onnxruntime environment.
func ShutdownRuntime() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// NewONNXModel loads the graph at opts.ModelPath. InitRuntime must have succeeded.
func NewONNXModel(opts ONNXOptions) (*ONNXModel, error) {
	log := logger.Default().WithPrefix("predictor")
	if opts.OutputWidth <= 0 {
		return nil, fmt.Errorf("output width must be positive, got %d", opts.OutputWidth)
	}

	log.Info("loading model: %s", opts.ModelPath)
	inputShape := ort.NewShape(1, board.GridSize, board.GridSize, features.Planes)
	input, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate input tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(opts.OutputWidth)))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(opts.ModelPath,
		[]string{opts.InputName}, []string{opts.OutputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create session for %s: %w", opts.ModelPath, err)
	}

	log.Info("model ready: input=%s output=%s width=%d", opts.InputName, opts.OutputName, opts.OutputWidth)
	return &ONNXModel{
		session: session,
		input:   input,
		output:  output,
		log:     log,
	}, nil
}

// Predict copies the features into the input buffer, runs the graph and returns
// a copy of the scores.
func (m *ONNXModel) Predict(ctx context.Context, in *features.Tensor) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, fmt.Errorf("model is closed")
	}

	data := in.Data()
	buf := m.input.GetData()
	if len(data) != len(buf) {
		return nil, fmt.Errorf("input has %d values, model expects %d", len(data), len(buf))
	}
	copy(buf, data)

	if err := m.session.Run(); err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}

	scores := make([]float32, len(m.output.GetData()))
	copy(scores, m.output.GetData())
	return scores, nil
}

// Close releases the session and its tensors.
func (m *ONNXModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	m.log.Debug("closing model")
	err := m.session.Destroy()
	m.input.Destroy()
	m.output.Destroy()
	m.session = nil
	return err
}
