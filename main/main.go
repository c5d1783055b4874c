package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/icemc/phoprop"
	"github.com/icemc/phoprop/detector"
	"github.com/icemc/phoprop/ice"
	"github.com/icemc/phoprop/io"
	"github.com/icemc/phoprop/rand"
)

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Init(con *io.PropagateConfig) error {
	if con.LogFile != "" {
		var err error
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return err
		}
		log.SetOutput(fg.log)
	}

	if con.ProfileFile != "" {
		var err error
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			return err
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			return err
		}
	}

	return nil
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		propagate, exampleConfig string
	)

	flag.StringVar(
		&propagate, "Propagate", "",
		"Configuration file for [Propagate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. 'Propagate' is the only accepted argument.",
	)

	flag.Parse()

	switch {
	case exampleConfig != "":
		if exampleConfig != "Propagate" {
			log.Fatalf(
				"Unrecognized config type '%s'. Only 'Propagate' is "+
					"supported.", exampleConfig,
			)
		}
		fmt.Println(io.ExamplePropagateFile)

	case propagate != "":
		wrap, err := io.ReadPropagateWrapper(propagate)
		if err != nil {
			log.Fatal(err.Error())
		}
		propagateMain(&wrap.Propagate)

	default:
		log.Fatal(
			"You must select a mode through -Propagate or -ExampleConfig.",
		)
	}
}

func propagateMain(con *io.PropagateConfig) {
	if !con.ValidBatchSize() {
		log.Fatal("Invalid/non-existent 'BatchSize' value.")
	} else if !con.ValidCascadesPerStep() {
		log.Fatal(
			"'CascadesPerStep' must be positive and divide 'BatchSize'.",
		)
	} else if !con.ValidCascadeFile() {
		log.Fatal("Invalid/non-existent 'CascadeFile' value.")
	} else if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDetector() {
		log.Fatal("Invalid detector geometry values.")
	} else if !con.ValidIce() {
		log.Fatal(
			"You must set either 'IceFile' or positive 'ScatterLength' " +
				"and 'AbsorptionLength' values.",
		)
	} else if !con.ValidScatterExponent() {
		log.Fatal("Invalid 'ScatterExponent' value.")
	} else if !con.ValidCutoffFraction() {
		log.Fatal("Invalid 'CutoffFraction' value.")
	} else if !con.ValidGenerator() {
		log.Fatal(
			"'Generator' must be one of 'Xorshift', 'Tausworthe', 'Golang'.",
		)
	} else if !con.ValidPrecision() {
		log.Fatal("float64 is currently the only supported 'Precision'.")
	}

	fg := &FileGroup{}
	if err := fg.Init(con); err != nil {
		log.Fatal(err.Error())
	}
	defer fg.Close()

	origins, err := io.ReadCascades(con.CascadeFile)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(origins) != con.CascadesPerStep {
		log.Fatalf(
			"'%s' contains %d cascades, but CascadesPerStep is %d.",
			con.CascadeFile, len(origins), con.CascadesPerStep,
		)
	}

	var med phoprop.Medium
	if con.IceFile != "" {
		med, err = ice.ReadLayered(con.IceFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	} else {
		med = ice.NewUniform(con.ScatterLength, con.AbsorptionLength)
	}

	det := detector.NewGrid(
		con.DetectorModules, con.DetectorSpacing, con.DetectorRadius,
	)

	var gen *rand.Generator
	if con.Seed == 0 {
		gen = rand.NewTimeSeed(con.GeneratorType())
	} else {
		gen = rand.New(con.GeneratorType(), uint64(con.Seed))
	}

	prop := phoprop.NewPropagator(
		med, det, phoprop.NewScatterer(con.ScatterExponent), gen,
	)
	prop.CutoffFraction = con.CutoffFraction
	prop.LayerBoundary = con.LayerBoundary

	log.Printf(
		"Propagating %d photons from %d cascades.",
		con.BatchSize, len(origins),
	)
	t0 := time.Now()
	b := prop.Propagate(origins, con.BatchSize)
	log.Printf("Propagation took %v.", time.Since(t0))

	if err := io.WriteResults(con.Output, b); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", con.Output)
}
