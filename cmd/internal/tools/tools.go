package tools

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/jaredallen/cycliccode/benchmarking"
	"github.com/jaredallen/cycliccode/cyclic"
)

type SimulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	CodeInfo string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		CodeInfo: s.CodeInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.CodeInfo = ss.CodeInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Md5Sum fingerprints a code by its parity check rows so results files
// can be validated against the code they were produced with.
func Md5Sum(code *cyclic.Code) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(code.String())))
}

func LoadCyclicCode(filepath string) (*cyclic.Code, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the CODE_JSON_FILE must exist")
	}

	bs, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v\n", filepath, err)
	}

	var code cyclic.Code
	err = json.Unmarshal(bs, &code)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v\n", filepath, err)
	}

	return &code, nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v\n", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v\n", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %v\n", err)
	}

	err = ioutil.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %v\n", filepath, err)
	}
	return nil
}
