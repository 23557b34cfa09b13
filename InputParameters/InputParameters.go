package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type TranscriptionParameters struct {
	Title                          string    `yaml:"Title"`
	Scheme                         string    `yaml:"Scheme"`
	Degree                         int       `yaml:"Degree"`
	Mesh                           []float64 `yaml:"Mesh"`
	TimeInitial                    float64   `yaml:"TimeInitial"`
	TimeFinal                      float64   `yaml:"TimeFinal"`
	NumStates                      int       `yaml:"NumStates"`
	NumControls                    int       `yaml:"NumControls"`
	NumMultipliers                 int       `yaml:"NumMultipliers"`
	InterpolateControlMidpoints    bool      `yaml:"InterpolateControlMidpoints"`
	InterpolateMultiplierMidpoints bool      `yaml:"InterpolateMultiplierMidpoints"`
}

func (tp *TranscriptionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, tp)
}

func (tp *TranscriptionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("[%s]\t= Scheme\n", tp.Scheme)
	fmt.Printf("[%d]\t\t\t= Degree\n", tp.Degree)
	fmt.Printf("%v\t= Mesh\n", tp.Mesh)
	fmt.Printf("%8.5f\t\t= TimeInitial\n", tp.TimeInitial)
	fmt.Printf("%8.5f\t\t= TimeFinal\n", tp.TimeFinal)
	fmt.Printf("[%d]\t\t\t= NumStates\n", tp.NumStates)
	fmt.Printf("[%d]\t\t\t= NumControls\n", tp.NumControls)
	fmt.Printf("[%d]\t\t\t= NumMultipliers\n", tp.NumMultipliers)
	fmt.Printf("[%v]\t\t= InterpolateControlMidpoints\n", tp.InterpolateControlMidpoints)
	fmt.Printf("[%v]\t\t= InterpolateMultiplierMidpoints\n", tp.InterpolateMultiplierMidpoints)
}
