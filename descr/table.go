// Copyright (c) 2024, The CCNeuro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descr

import (
	"fmt"

	"github.com/ccneuro/spont"
	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/metric"
	"github.com/emer/etable/v2/split"
)

// NeuronStats builds the per-neuron summary table over all neurons:
// mean, std, range of each neuron's response timecourse, its
// correlation with running speed, and its cortical depth binned at
// depthBin microns for grouped summaries.
func NeuronStats(bd *spont.Bundle, depthBin float64) *etable.Table {
	return NeuronStatsRange(bd, 0, bd.NNeurons(), depthBin)
}

// NeuronStatsRange builds the per-neuron summary for neurons [st, en)
// -- the range split is what an MPI run distributes across ranks.
func NeuronStatsRange(bd *spont.Bundle, st, en int, depthBin float64) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "NeuronStats")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "Neuron", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Mean", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Std", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Min", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Max", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "CorrRun", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Depth", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "DepthBin", Type: etensor.STRING, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, en-st)

	run := bd.RunSpeed.Values
	row64 := make([]float64, bd.NTimes())
	for i := st; i < en; i++ {
		resp := bd.NeurResp(i)
		for t, v := range resp {
			row64[t] = float64(v)
		}
		mm := MinMax32(resp)
		depth := float64(bd.Depth(i))
		row := i - st
		dt.SetCellFloat("Neuron", row, float64(i))
		dt.SetCellFloat("Mean", row, float64(Mean32(resp)))
		dt.SetCellFloat("Std", row, float64(Std32(resp)))
		dt.SetCellFloat("Min", row, float64(mm.Min))
		dt.SetCellFloat("Max", row, float64(mm.Max))
		dt.SetCellFloat("CorrRun", row, metric.Correlation64(row64, run))
		dt.SetCellFloat("Depth", row, depth)
		dt.SetCellString("DepthBin", row, DepthBinLabel(depth, depthBin))
	}
	return dt
}

// DepthBinLabel returns the zero-padded label of the depth bin
// containing depth, so labels sort correctly as strings.
func DepthBinLabel(depth, binSize float64) string {
	if binSize <= 0 {
		binSize = 100
	}
	lo := int(depth/binSize) * int(binSize)
	return fmt.Sprintf("%05d", lo)
}

// DepthGroups aggregates a NeuronStats table by depth bin, averaging
// the per-neuron statistics within each bin.
func DepthGroups(dt *etable.Table) *etable.Table {
	ix := etable.NewIdxView(dt)
	spl := split.GroupBy(ix, []string{"DepthBin"})
	split.Agg(spl, "Mean", agg.AggMean)
	split.Agg(spl, "Std", agg.AggMean)
	split.Agg(spl, "CorrRun", agg.AggMean)
	return spl.AggsToTable(etable.AddAggName)
}

// BehavTable builds the per-timepoint behavior table: running speed,
// pupil area, and population-mean response -- the variables the
// correlation and regression exercises relate.
func BehavTable(bd *spont.Bundle) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Behavior")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "Time", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Run", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Pupil", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "PopMean", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	nt := bd.NTimes()
	dt.SetFromSchema(sch, nt)

	pm := bd.PopMean()
	for t := 0; t < nt; t++ {
		dt.SetCellFloat("Time", t, float64(t))
		dt.SetCellFloat("Run", t, bd.RunSpeed.Values[t])
		dt.SetCellFloat("Pupil", t, bd.PupilArea.Values[t])
		dt.SetCellFloat("PopMean", t, pm[t])
	}
	return dt
}

// DescTable renders a set of named Describe summaries as a table.
func DescTable(names []string, ds []Desc) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "Describe")
	sch := etable.Schema{
		{Name: "Var", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "N", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Mean", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Std", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Sem", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Min", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Max", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Q1", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Median", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Q3", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(ds))
	for i, d := range ds {
		dt.SetCellString("Var", i, names[i])
		dt.SetCellFloat("N", i, float64(d.N))
		dt.SetCellFloat("Mean", i, d.Mean)
		dt.SetCellFloat("Std", i, d.Std)
		dt.SetCellFloat("Sem", i, d.Sem)
		dt.SetCellFloat("Min", i, d.Range.Min)
		dt.SetCellFloat("Max", i, d.Range.Max)
		dt.SetCellFloat("Q1", i, d.Q1)
		dt.SetCellFloat("Median", i, d.Median)
		dt.SetCellFloat("Q3", i, d.Q3)
	}
	return dt
}
