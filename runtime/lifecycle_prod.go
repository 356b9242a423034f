//go:build !dev

package runtime

// recoverHook logs a panic raised by a lifecycle hook instead of letting it
// take the whole application down.
func (r *RendererImpl) recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		r.logger.Error().
			Str("hook", hook).
			Str("component", key).
			Interface("panic", rec).
			Msg("lifecycle hook panicked")
	}
}

// callOnInit invokes the OnInit lifecycle method in production mode.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer r.recoverHook("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer r.recoverHook("OnParametersSet", key)
	receiver.OnParametersSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer r.recoverHook("OnDestroy", key)
	cleaner.OnDestroy()
}
