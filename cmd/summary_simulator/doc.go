// 19 Oct 2026

/*
Summary_simulator makes a fake sequencing summary for testing programs
that read them, without needing a real sequencing run.
Usage:

	summary_simulator [options] qscore_threshold most_common_barcode num_rows

will write num_rows reads to sequencing_summary_sim_data.txt in the
current directory. Columns are

	read_id passes_filtering sequence_length_template mean_qscore_template barcode_arrangement

separated by tabs, with one header line.

Lengths come from a gamma distribution (mean 10000, clamped to 20 .. 4000000).
Q-scores come from a normal distribution around 18.05 which is then skewed,
so there are more bad reads than very good ones, and clamped to 1.8 .. 40.877296.
A read passes filtering if its q-score is at least qscore_threshold.
About 85 % of reads get most_common_barcode, 10 % are unclassified,
0.5 % get "-" and the rest are spread over barcode01 .. barcode96.

Flags:

	-h, --help
		print usage
	-v, --version
		print the version
	-o filename
		write here instead of sequencing_summary_sim_data.txt. "-" is standard output.
	-r seed
		random number seed. Without it, every run is different.
	-u
		read ids are version 4 uuids instead of random letters and digits
	-z
		snappy compress the output and add .sz to the filename
	-c paramfile
		toml (.toml) or yaml (.yaml, .yml) file overriding the distribution constants
	-s
		print statistics (pass rate, N50, barcodes) after writing
	-j
		print the statistics as json
	-p
		write a cpu profile to the current directory

Exit status is 1 if the number of arguments is wrong or the file cannot
be written. If the threshold or the number of rows cannot be read, there
is a message, but the exit status is 0. Scripts have relied on this.
The output file is written under a temporary name and only renamed when
complete, so a failed run never leaves a truncated report.
*/
package main
