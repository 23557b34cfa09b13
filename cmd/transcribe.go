/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/trajopt/collo/InputParameters"
	"github.com/trajopt/collo/transcription"
)

// TranscribeCmd represents the transcribe command
var TranscribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Build the NLP transcription structure for a problem description",
	Long: `Builds the grid geometry, quadrature coefficients, mesh indicator and
constraint structure for a YAML problem description and reports their shapes`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		icFile, err := cmd.Flags().GetString("inputConditionsFile")
		if err != nil {
			panic(err)
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		tp := processInput(icFile)
		RunTranscribe(tp)
	},
}

func processInput(icFile string) (tp *InputParameters.TranscriptionParameters) {
	var (
		err error
	)
	if len(icFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Scheme: legendre-gauss-radau
Degree: 3
Mesh: [0, 0.5, 1]
TimeInitial: 0
TimeFinal: 1
NumStates: 2
NumControls: 1
InterpolateControlMidpoints: true
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(icFile); err != nil {
		panic(err)
	}
	tp = &InputParameters.TranscriptionParameters{}
	if err = tp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(TranscribeCmd)
	TranscribeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the problem:\n\t- Mesh\n\t- Degree\n\t- variable counts")
	TranscribeCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the transcription")
}

func RunTranscribe(tp *InputParameters.TranscriptionParameters) {
	tp.Print()
	p := &transcription.Problem{
		NumStates:      tp.NumStates,
		NumControls:    tp.NumControls,
		NumMultipliers: tp.NumMultipliers,
		TimeInitial:    tp.TimeInitial,
		TimeFinal:      tp.TimeFinal,
		Mesh:           tp.Mesh,
	}
	scheme, err := transcription.New(p, transcription.Options{
		Scheme:                         tp.Scheme,
		Degree:                         tp.Degree,
		InterpolateControlMidpoints:    tp.InterpolateControlMidpoints,
		InterpolateMultiplierMidpoints: tp.InterpolateMultiplierMidpoints,
	})
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	var (
		times = scheme.GridTimes()
		coeff = scheme.QuadratureCoefficients()
		spar  = scheme.DefectSparsity()
	)
	nnz := spar.NNZ()
	rows, cols := spar.Dims()
	fmt.Printf("scheme = %s\n", scheme.Name())
	fmt.Printf("numGridPoints = %d, t = [%8.5f, %8.5f]\n",
		scheme.NumGridPoints(), times.Min(), times.Max())
	fmt.Printf("sum(quadratureCoefficients) = %8.5f (horizon = %8.5f)\n",
		coeff.Sum(), tp.TimeFinal-tp.TimeInitial)
	fmt.Printf("defect jacobian structure: %d x %d, %d structural nonzeros\n",
		rows, cols, nnz)
}
