package errors

// Common error messages for the changelog-split CLI.

// InputUnreadable creates an error for a changelog that cannot be read.
func InputUnreadable(err error) *CLIError {
	return Wrap(err, Prerequisite,
		"Check that the file exists and is readable",
		"Pass a different file with --input or set input_path in .changelog-split.yml",
	)
}

// OutputDirUnavailable creates an error for an output directory that cannot be created.
func OutputDirUnavailable(err error) *CLIError {
	return Wrap(err, Runtime,
		"Check permissions on the parent directory",
		"Choose another location with --output",
	)
}

// WriteFailed creates an error for an entry file that could not be written.
func WriteFailed(err error) *CLIError {
	return Wrap(err, Runtime,
		"Check free space and permissions in the output directory",
	)
}

// SlugCollision creates an error for two entries that produce the same file name.
func SlugCollision(err error) *CLIError {
	return Wrap(err, Runtime,
		"Make the headings distinct so each release gets its own file",
		"Or use --on-collision=warn to keep the last entry",
	)
}

// InvalidConfig creates an error for configuration that fails to load or validate.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "invalid configuration",
		"Run 'changelog-split config --template' to see every option",
	)
}
