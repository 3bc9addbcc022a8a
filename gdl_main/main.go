package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/gradlab/gradient_descent_lab/gdl"
	"gonum.org/v1/gonum/floats"
)

func decodeConfig(srcConfig string, out interface{}) {
	file, err := os.Open(srcConfig)
	gdl.HandleError(err)
	defer func() { gdl.HandleError(file.Close()) }()

	decoder := json.NewDecoder(file)
	gdl.HandleError(decoder.Decode(out))
}

//loadDesign reads a dataset and expands it into fit inputs. An omitted
//degree means simple linear regression.
func loadDesign(fileNameX, fileNameY string, degree int) *gdl.FitInputs {
	ds, err := gdl.ReadDataset(fileNameX, fileNameY)
	gdl.HandleError(err)

	if degree == 0 {
		degree = 1
	}
	design, err := ds.Design(degree)
	gdl.HandleError(err)

	return &gdl.FitInputs{Design: design, Target: ds.Target()}
}

type ClosedFormConfig struct {
	FileNameX       string   `json:"filename_x"`
	FileNameY       string   `json:"filename_y"`
	Degree          int      `json:"degree"`
	Alpha           *float64 `json:"alpha"`
	FileNameWeights string   `json:"filename_weights"`
}

func closedForm(srcConfig string) {
	var config ClosedFormConfig
	decodeConfig(srcConfig, &config)

	inputs := loadDesign(config.FileNameX, config.FileNameY, config.Degree)

	weights, err := gdl.FitClosedForm(inputs.Design, inputs.Target, config.Alpha)
	gdl.HandleError(err)

	prediction := inputs.Predict(weights)
	log.Printf("closed form RMSE = %g", gdl.RMSE(prediction, inputs.Target))

	gdl.HandleError(gdl.WriteNpy(config.FileNameWeights, weights))
}

type DescentConfig struct {
	FileNameX          string  `json:"filename_x"`
	FileNameY          string  `json:"filename_y"`
	Degree             int     `json:"degree"`
	LearningRate       float64 `json:"learning_rate"`
	Epsilon            float64 `json:"epsilon"`
	MaxEpochs          int     `json:"max_epochs"`
	RecordPeriod       int     `json:"record_period"`
	Seed               int64   `json:"seed"`
	FileNameWeights    string  `json:"filename_weights"`
	FileNameTrajectory string  `json:"filename_trajectory"`
}

func reportFit(result *gdl.FitResult, config DescentConfig) {
	if result.Converged {
		log.Printf("converged after %d epochs, final loss = %g", result.Epochs, result.Trajectory.Last().Loss)
	} else {
		log.Printf("no convergence within %d epochs, final loss = %g", result.Epochs, result.Trajectory.Last().Loss)
	}

	gdl.HandleError(gdl.WriteNpy(config.FileNameWeights, result.Weights))
	if config.FileNameTrajectory != "" {
		gdl.HandleError(result.Trajectory.Dump(config.FileNameTrajectory))
	}
}

func descent(srcConfig string) {
	var config DescentConfig
	decodeConfig(srcConfig, &config)

	inputs := loadDesign(config.FileNameX, config.FileNameY, config.Degree)

	result, err := gdl.FitGradientDescent(inputs.Design, inputs.Target, gdl.BatchParams{
		LearningRate: config.LearningRate,
		Epsilon:      config.Epsilon,
		MaxEpochs:    config.MaxEpochs,
		RecordPeriod: config.RecordPeriod,
	})
	gdl.HandleError(err)
	reportFit(result, config)
}

func sgd(srcConfig string) {
	var config DescentConfig
	decodeConfig(srcConfig, &config)

	inputs := loadDesign(config.FileNameX, config.FileNameY, config.Degree)

	result, err := gdl.FitSGD(inputs.Design, inputs.Target, gdl.SGDParams{
		LearningRate: config.LearningRate,
		Epsilon:      config.Epsilon,
		MaxEpochs:    config.MaxEpochs,
		RecordPeriod: config.RecordPeriod,
		Seed:         config.Seed,
	})
	gdl.HandleError(err)
	reportFit(result, config)
}

type SurfaceConfig struct {
	FileNameX       string  `json:"filename_x"`
	FileNameY       string  `json:"filename_y"`
	SlopeMin        float64 `json:"slope_min"`
	SlopeMax        float64 `json:"slope_max"`
	SlopeSteps      int     `json:"slope_steps"`
	InterceptMin    float64 `json:"intercept_min"`
	InterceptMax    float64 `json:"intercept_max"`
	InterceptSteps  int     `json:"intercept_steps"`
	Floor           float64 `json:"floor"`
	FileNameSurface string  `json:"filename_surface"`
}

func surface(srcConfig string) {
	var config SurfaceConfig
	decodeConfig(srcConfig, &config)

	ds, err := gdl.ReadDataset(config.FileNameX, config.FileNameY)
	gdl.HandleError(err)

	slopes := floats.Span(make([]float64, config.SlopeSteps), config.SlopeMin, config.SlopeMax)
	intercepts := floats.Span(make([]float64, config.InterceptSteps), config.InterceptMin, config.InterceptMax)

	result, err := gdl.LossSurface(ds, slopes, intercepts, config.Floor)
	gdl.HandleError(err)

	aStar, bStar := gdl.ExactMinimizer(ds)
	j, k := result.ArgMin()
	log.Printf("exact minimizer a = %g, b = %g", aStar, bStar)
	log.Printf("grid minimum %g at a = %g, b = %g", result.At(j, k), slopes[j], intercepts[k])

	gdl.HandleError(gdl.WriteNpy(config.FileNameSurface, result.Aggregate))
}

func main() {
	runMode := flag.String("mode", "descent", "one of 'closed_form', 'descent', 'sgd' or 'surface'")
	config := flag.String("config", "gdl_config.json", "a config file for the run of the program")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	flag.Parse()

	modes := map[string]func(string){
		"closed_form": closedForm,
		"descent":     descent,
		"sgd":         sgd,
		"surface":     surface,
	}
	run, ok := modes[*runMode]
	if !ok {
		log.Fatalf("unknown mode %q", *runMode)
	}
	run(*config)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		gdl.HandleError(err)
		defer func() { gdl.HandleError(f.Close()) }()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
